package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrors(t *testing.T) {
	assert.True(t, errors.Is(ErrConfigNotFound, ErrConfigNotFound))
	assert.False(t, errors.Is(ErrConfigNotFound, ErrConfigMalformed))
	assert.False(t, errors.Is(ErrConfigMalformed, ErrExternalToolFailed))

	wrapped := fmt.Errorf("context: %w", ErrNoGitRoot)
	assert.True(t, errors.Is(wrapped, ErrNoGitRoot))

	wrappedConfig := fmt.Errorf("config error: %w", ErrConfigNotFound)
	assert.True(t, errors.Is(wrappedConfig, ErrConfigNotFound))
	assert.False(t, errors.Is(wrappedConfig, ErrNoGitRoot))
}

func TestWrappedErrors_Chain(t *testing.T) {
	original := fmt.Errorf("original: %w", ErrConfigWrite)
	wrapped := fmt.Errorf("wrapped: %w", original)

	assert.True(t, errors.Is(wrapped, ErrConfigWrite))
	assert.True(t, errors.Is(wrapped, original))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "configuration not found", ErrConfigNotFound.Error())
	assert.Equal(t, "prompt failed", ErrPromptFailed.Error())
	assert.Equal(t, "git root not found", ErrNoGitRoot.Error())
}

func TestSubtreeNotRegisteredError(t *testing.T) {
	err := fmt.Errorf("selecting: %w", NewSubtreeNotRegisteredError("lib"))

	assert.True(t, errors.Is(err, ErrSubtreeNotRegistered))

	var notRegistered *SubtreeNotRegisteredError
	assert.True(t, errors.As(err, &notRegistered))
	assert.Equal(t, "lib", notRegistered.Name)
	assert.Equal(t, `subtree "lib" not found in .gitstu`, notRegistered.Error())
	assert.Equal(t, "to define a new subtree: gitstu add lib", notRegistered.Hint())
}

func TestExternalToolError(t *testing.T) {
	t.Run("failed", func(t *testing.T) {
		err := NewExternalToolFailed("git subtree pull", 1, "fatal: bad ref\n", errors.New("exit status 1"))

		assert.True(t, errors.Is(err, ErrExternalToolFailed))
		assert.False(t, errors.Is(err, ErrExternalToolUnavailable))
		assert.Equal(t, "git subtree pull exited with code 1\nfatal: bad ref", err.Error())
	})

	t.Run("unavailable", func(t *testing.T) {
		cause := errors.New("executable file not found in $PATH")
		err := NewExternalToolUnavailable("git subtree pull", cause)

		assert.True(t, errors.Is(err, ErrExternalToolUnavailable))
		assert.False(t, errors.Is(err, ErrExternalToolFailed))
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), "could not run git subtree pull")
	})
}
