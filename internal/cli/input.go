package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dylan-marx/rangesum/internal/ranges"
	"github.com/dylan-marx/rangesum/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	numbersPrompt = ui.Prompt{
		Title:       "Numbers",
		Description: "Comma-separated integers, e.g. 1,3,6,7,8",
		Placeholder: "1,3,6,7,8",
	}
	summaryPrompt = ui.Prompt{
		Title:       "Summary",
		Description: "Values and ranges, e.g. 1, 3, 6-8",
		Placeholder: "1, 3, 6-8",
	}
)

// Swapped in tests.
var (
	stdinIsTerminal = func(r io.Reader) bool {
		f, ok := r.(*os.File)
		return ok && isTerminal(f)
	}
	promptInput = ui.PromptInput
	abortKey    = ui.AbortKey
)

// ErrInterrupted is returned when the user quits a prompt with ctrl+c.
var ErrInterrupted = errors.New("interrupted")

// readInput returns the list to process. Positional arguments win and are
// joined with the delimiter; otherwise piped stdin is read with each line
// treated as a fragment of the list. A terminal on stdin gets a prompt.
func (a *app) readInput(cmd *cobra.Command, args []string, p ui.Prompt, validate func(string) error) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, ranges.Delimiter), nil
	}

	in := cmd.InOrStdin()
	if stdinIsTerminal(in) {
		if !a.cfg.Interactive {
			a.logger.Debug("No input and prompts are disabled")
			return "", nil
		}
		p.Validate = validate
		return promptInput(p)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return joinLines(string(data)), nil
}

func joinLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", ranges.Delimiter)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// handleAbort maps a cancelled prompt to its outcome: esc is a clean exit,
// ctrl+c is ErrInterrupted. handled is false for any other err.
func (a *app) handleAbort(err error) (handled bool, _ error) {
	if !errors.Is(err, ui.ErrCancelled) {
		return false, err
	}
	if abortKey() == "ctrl+c" {
		return true, ErrInterrupted
	}
	a.logger.Info(ui.StyleDim.Render("Input cancelled"))
	return true, nil
}
