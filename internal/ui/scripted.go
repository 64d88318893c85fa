package ui

import (
	"fmt"
	"strings"

	gserrors "github.com/gitstu/gitstu/internal/errors"
)

// ScriptedPrompter is a test double that answers prompts from a script and
// records every question it was asked.
type ScriptedPrompter struct {
	// Inputs are consumed in order by Input. An empty string accepts the
	// default and fails like a validation error when there is none.
	Inputs []string
	// Confirms are consumed in order by Confirm.
	Confirms []bool
	// InputErr and ConfirmErr, when set, are returned instead of an answer.
	InputErr   error
	ConfirmErr error

	// Asked records each prompt as "label [default]" or "confirm: label".
	Asked []string
}

// NewScriptedPrompter creates a ScriptedPrompter answering Input calls with inputs.
func NewScriptedPrompter(inputs ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Inputs: inputs}
}

// Input implements Prompter.
func (s *ScriptedPrompter) Input(label, def string) (string, error) {
	s.Asked = append(s.Asked, fmt.Sprintf("%s [%s]", label, def))
	if s.InputErr != nil {
		return "", s.InputErr
	}
	if len(s.Inputs) == 0 {
		return "", fmt.Errorf("unexpected prompt %q: %w", label, gserrors.ErrPromptFailed)
	}

	answer := s.Inputs[0]
	s.Inputs = s.Inputs[1:]
	if answer == "" {
		answer = def
	}
	if answer == "" {
		return "", fmt.Errorf("%s cannot be empty: %w", label, gserrors.ErrPromptFailed)
	}
	return answer, nil
}

// Confirm implements Prompter.
func (s *ScriptedPrompter) Confirm(label string) (bool, error) {
	s.Asked = append(s.Asked, "confirm: "+label)
	if s.ConfirmErr != nil {
		return false, s.ConfirmErr
	}
	if len(s.Confirms) == 0 {
		return false, fmt.Errorf("unexpected confirmation %q: %w", label, gserrors.ErrPromptFailed)
	}

	answer := s.Confirms[0]
	s.Confirms = s.Confirms[1:]
	return answer, nil
}

// ConfirmCount returns how many confirmations were requested.
func (s *ScriptedPrompter) ConfirmCount() int {
	count := 0
	for _, asked := range s.Asked {
		if strings.HasPrefix(asked, "confirm: ") {
			count++
		}
	}
	return count
}
