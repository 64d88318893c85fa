package config

import (
	"errors"

	gserrors "github.com/gitstu/gitstu/internal/errors"
)

const (
	// Exit codes
	ExitSuccess = iota
	ExitGeneralError
	ExitInvalidArguments
	ExitSubtreeNotFound
	ExitGitOperationFailed
	ExitConfigurationError
	ExitPromptFailed
)

// FileName is the registry file kept at the repository root.
const FileName = ".gitstu"

// DefaultBranch is suggested when a subtree has no branch yet.
const DefaultBranch = "master"

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, gserrors.ErrInvalidInvocation):
		return ExitInvalidArguments
	case errors.Is(err, gserrors.ErrSubtreeNotRegistered):
		return ExitSubtreeNotFound
	case errors.Is(err, gserrors.ErrExternalToolFailed),
		errors.Is(err, gserrors.ErrExternalToolUnavailable):
		return ExitGitOperationFailed
	case errors.Is(err, gserrors.ErrConfigNotFound),
		errors.Is(err, gserrors.ErrConfigMalformed),
		errors.Is(err, gserrors.ErrConfigWrite),
		errors.Is(err, gserrors.ErrNoGitRoot):
		return ExitConfigurationError
	case errors.Is(err, gserrors.ErrPromptFailed):
		return ExitPromptFailed
	default:
		return ExitGeneralError
	}
}
