package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger wraps the charmbracelet logger to add a SUCCESS line
type Logger struct {
	*log.Logger
}

// NewLogger wraps l and applies the level styles.
func NewLogger(l *log.Logger) *Logger {
	lg := &Logger{Logger: l}
	lg.configureStyles()
	return lg
}

// Success prints a success message with a green prefix
func (l *Logger) Success(msg interface{}, keyvals ...interface{}) {
	l.Helper()
	label := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		SetString("SUCCESS").
		String()

	// Use Print instead of Info to avoid the default "INFO" prefix
	l.Print(fmt.Sprintf("%s %v", label, msg), keyvals...)
}

func (l *Logger) configureStyles() {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Bold(true).
		Foreground(lipgloss.Color("63"))

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO ").
		Bold(true).
		Foreground(lipgloss.Color("86"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN ").
		Bold(true).
		Foreground(lipgloss.Color("192"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))

	l.SetStyles(styles)
}
