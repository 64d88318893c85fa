// Package errors provides sentinel errors and custom error types for gitstu.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrConfigNotFound indicates that the .gitstu registry does not exist
	ErrConfigNotFound = errors.New("configuration not found")

	// ErrConfigMalformed indicates that the registry could not be parsed against its schema
	ErrConfigMalformed = errors.New("configuration malformed")

	// ErrConfigWrite indicates that the registry could not be written
	ErrConfigWrite = errors.New("configuration write failed")

	// ErrSubtreeNotRegistered indicates that a named subtree is missing from the registry
	ErrSubtreeNotRegistered = errors.New("subtree not registered")

	// ErrExternalToolUnavailable indicates that the git executable could not be started
	ErrExternalToolUnavailable = errors.New("external tool unavailable")

	// ErrExternalToolFailed indicates that the git executable exited non-zero
	ErrExternalToolFailed = errors.New("external tool failed")

	// ErrPromptFailed indicates that interactive input could not be read
	ErrPromptFailed = errors.New("prompt failed")

	// ErrNoGitRoot indicates that the working directory is not inside a git repository
	ErrNoGitRoot = errors.New("git root not found")

	// ErrInvalidInvocation indicates conflicting or missing command line arguments
	ErrInvalidInvocation = errors.New("invalid invocation")
)

// SubtreeNotRegisteredError represents a lookup of a subtree name that is not in the registry
type SubtreeNotRegisteredError struct {
	Name string
}

func (e *SubtreeNotRegisteredError) Error() string {
	return fmt.Sprintf("subtree %q not found in .gitstu", e.Name)
}

// Hint returns the command that registers the missing subtree.
func (e *SubtreeNotRegisteredError) Hint() string {
	return fmt.Sprintf("to define a new subtree: gitstu add %s", e.Name)
}

// Is returns true if the target error is ErrSubtreeNotRegistered
func (e *SubtreeNotRegisteredError) Is(target error) bool {
	return target == ErrSubtreeNotRegistered
}

// NewSubtreeNotRegisteredError creates a new SubtreeNotRegisteredError
func NewSubtreeNotRegisteredError(name string) *SubtreeNotRegisteredError {
	return &SubtreeNotRegisteredError{Name: name}
}

// ExternalToolError represents a git invocation that could not start or exited non-zero.
// ExitCode is -1 when the process never started.
type ExternalToolError struct {
	Command  string
	ExitCode int
	Output   string
	Err      error
}

func (e *ExternalToolError) Error() string {
	var msg string
	if e.started() {
		msg = fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	} else {
		msg = fmt.Sprintf("could not run %s", e.Command)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	if e.Err != nil && !e.started() {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

// Is returns true for ErrExternalToolFailed when the process ran and
// ErrExternalToolUnavailable when it never started.
func (e *ExternalToolError) Is(target error) bool {
	if e.started() {
		return target == ErrExternalToolFailed
	}
	return target == ErrExternalToolUnavailable
}

func (e *ExternalToolError) started() bool {
	return e.ExitCode >= 0
}

// NewExternalToolFailed creates an ExternalToolError for a process that exited non-zero
func NewExternalToolFailed(command string, exitCode int, output string, err error) *ExternalToolError {
	return &ExternalToolError{
		Command:  command,
		ExitCode: exitCode,
		Output:   output,
		Err:      err,
	}
}

// NewExternalToolUnavailable creates an ExternalToolError for a process that could not start
func NewExternalToolUnavailable(command string, err error) *ExternalToolError {
	return &ExternalToolError{
		Command:  command,
		ExitCode: -1,
		Err:      err,
	}
}
