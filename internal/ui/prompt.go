package ui

import (
	"github.com/charmbracelet/huh"
)

// Prompt describes a single-line input form.
type Prompt struct {
	Title       string
	Description string
	Placeholder string
	Validate    func(string) error // optional
}

// PromptInput runs p and returns what the user typed.
func PromptInput(p Prompt) (string, error) {
	var input string

	field := huh.NewInput().
		Title(p.Title).
		Description("\n" + p.Description + "\n").
		Placeholder(p.Placeholder).
		Value(&input)
	if p.Validate != nil {
		field = field.Validate(p.Validate)
	}

	err := RunForm(huh.NewForm(huh.NewGroup(field)).
		WithTheme(Theme()).
		WithKeyMap(KeyMap()))
	if err != nil {
		return "", err
	}
	return input, nil
}
