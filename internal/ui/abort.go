package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	gserrors "github.com/gitstu/gitstu/internal/errors"
)

// ErrUserAborted is returned when the user aborts an interactive prompt.
// It normalizes Ctrl+C, Esc and Ctrl+D into a single PromptFailed error.
var ErrUserAborted = fmt.Errorf("user aborted: %w", gserrors.ErrPromptFailed)

// ErrNotInteractive is returned when a prompt is needed but stdin is not a terminal.
var ErrNotInteractive = fmt.Errorf("input required but not running interactively: %w", gserrors.ErrPromptFailed)

// NormalizeAbort converts known abort-like errors to ErrUserAborted and any
// other prompt error into one matching ErrPromptFailed.
func NormalizeAbort(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) {
		return ErrUserAborted
	}
	if errors.Is(err, gserrors.ErrPromptFailed) {
		return err
	}
	return fmt.Errorf("reading input: %v: %w", err, gserrors.ErrPromptFailed)
}

// IsAbort returns true if the error represents a user abort.
func IsAbort(err error) bool {
	return errors.Is(err, ErrUserAborted)
}
