package ui

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func TestLogger_Success(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(log.New(&buf))

	l.Success("Created config", "path", "/tmp/x.yml")

	out := buf.String()
	for _, want := range []string{"SUCCESS", "Created config", "/tmp/x.yml"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLogger_LevelStyles(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(log.New(&buf))
	l.SetLevel(log.WarnLevel)

	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "shown") {
		t.Errorf("expected WARN line, got %q", out)
	}
}

func TestHighlightYAML(t *testing.T) {
	in := "strict: false\n# comment\nlog_level: info\n"
	out := HighlightYAML(in)

	for _, want := range []string{"strict", "false", "comment", "log_level", "info"} {
		if !strings.Contains(out, want) {
			t.Errorf("highlighted output missing %q: %q", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("expected line structure preserved, got %d newlines", got)
	}
}

func TestPromptFilter_RecordsAbortKey(t *testing.T) {
	t.Cleanup(func() { interceptedKey = "" })

	tests := []struct {
		name string
		msg  tea.Msg
		want string
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, "esc"},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, "ctrl+c"},
		{"other key keeps last", tea.KeyMsg{Type: tea.KeyEnter}, "ctrl+c"},
		{"non-key message keeps last", tea.WindowSizeMsg{Width: 80}, "ctrl+c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := promptFilter(nil, tt.msg); !reflect.DeepEqual(got, tt.msg) {
				t.Errorf("filter changed message: %v", got)
			}
			if got := AbortKey(); got != tt.want {
				t.Errorf("AbortKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
