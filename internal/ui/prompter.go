package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Prompter is the interactive input capability handed to the resolver and
// the persistence gatekeeper.
type Prompter interface {
	// Input asks for a line of text. An empty answer returns def; when def is
	// empty the answer is required.
	Input(label, def string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(label string) (bool, error)
}

// FormPrompter asks questions with huh forms on the terminal.
type FormPrompter struct {
	// Interactive reports whether a terminal is attached. Defaults to IsInteractive.
	Interactive func() bool
}

// NewFormPrompter creates a FormPrompter. When nonInteractive is set every
// prompt fails with ErrNotInteractive.
func NewFormPrompter(nonInteractive bool) *FormPrompter {
	if nonInteractive {
		return &FormPrompter{Interactive: func() bool { return false }}
	}
	return &FormPrompter{Interactive: IsInteractive}
}

func (p *FormPrompter) interactive() bool {
	if p.Interactive == nil {
		return IsInteractive()
	}
	return p.Interactive()
}

// Input implements Prompter.
func (p *FormPrompter) Input(label, def string) (string, error) {
	if !p.interactive() {
		return "", fmt.Errorf("%s: %w", label, ErrNotInteractive)
	}

	value := def
	input := huh.NewInput().
		Title(label).
		Value(&value).
		Validate(requireValue(label, def))
	if def != "" {
		input = input.Placeholder(def)
	}

	form := huh.NewForm(huh.NewGroup(input)).WithTheme(huh.ThemeCatppuccin())
	if err := form.Run(); err != nil {
		return "", NormalizeAbort(err)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		value = def
	}
	return value, nil
}

// Confirm implements Prompter.
func (p *FormPrompter) Confirm(label string) (bool, error) {
	if !p.interactive() {
		return false, fmt.Errorf("%s: %w", label, ErrNotInteractive)
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(label).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return false, NormalizeAbort(err)
	}

	return confirmed, nil
}

func requireValue(label, def string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" && def == "" {
			return fmt.Errorf("%s cannot be empty", label)
		}
		return nil
	}
}
