// Package exec provides interfaces and implementations for command execution.
// This abstraction allows git invocations to be asserted in tests without
// spawning real processes.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	gserrors "github.com/gitstu/gitstu/internal/errors"
)

// Commander defines the interface for executing commands.
// Implementations can provide real command execution or mock behavior for testing.
type Commander interface {
	// Run executes a command in the specified directory with the given arguments.
	// Returns the combined stdout and stderr output, and any execution error.
	Run(ctx context.Context, dir string, command string, args ...string) ([]byte, error)
}

// RealCommander executes commands using the real operating system.
type RealCommander struct{}

// Run executes the command using exec.CommandContext and waits for it to exit.
func (c *RealCommander) Run(ctx context.Context, dir string, command string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// StreamingCommander is implemented by commanders that can show output while
// the command is still running.
type StreamingCommander interface {
	// RunStreaming is Run with the combined output also copied to w as it arrives.
	RunStreaming(ctx context.Context, dir string, w io.Writer, command string, args ...string) ([]byte, error)
}

// RunStreaming executes the command, copying stdout and stderr to w live.
func (c *RealCommander) RunStreaming(ctx context.Context, dir string, w io.Writer, command string, args ...string) ([]byte, error) {
	var buf bytes.Buffer
	out := io.MultiWriter(&buf, w)

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir
	cmd.Stdout = out
	cmd.Stderr = out
	err := cmd.Run()
	return buf.Bytes(), err
}

// exitCoder is satisfied by *exec.ExitError and by test doubles that simulate one.
type exitCoder interface {
	ExitCode() int
}

// CommandExecutor wraps a Commander and classifies failures into the
// ExternalToolUnavailable / ExternalToolFailed taxonomy.
type CommandExecutor struct {
	commander Commander
}

// NewCommandExecutor creates a new CommandExecutor with the given Commander.
// If commander is nil, a RealCommander is used.
func NewCommandExecutor(commander Commander) *CommandExecutor {
	if commander == nil {
		commander = &RealCommander{}
	}
	return &CommandExecutor{commander: commander}
}

// Run executes binary with args in dir. A process that exits non-zero yields an
// error matching ErrExternalToolFailed; one that cannot be started yields
// ErrExternalToolUnavailable.
func (e *CommandExecutor) Run(ctx context.Context, dir string, binary string, args []string) ([]byte, error) {
	output, err := e.commander.Run(ctx, dir, binary, args...)
	if err == nil {
		return output, nil
	}
	return output, classify(commandLine(binary, args), output, err)
}

// RunStreaming is Run for long-running commands whose output belongs on w.
// Commanders that cannot stream have their output written to w once the
// command succeeded. Streamed output is not repeated in the returned error.
func (e *CommandExecutor) RunStreaming(ctx context.Context, dir string, w io.Writer, binary string, args []string) ([]byte, error) {
	streamer, ok := e.commander.(StreamingCommander)
	if !ok {
		output, err := e.Run(ctx, dir, binary, args)
		if err == nil && len(bytes.TrimSpace(output)) > 0 {
			fmt.Fprintln(w, string(bytes.TrimSpace(output)))
		}
		return output, err
	}

	output, err := streamer.RunStreaming(ctx, dir, w, binary, args...)
	if err == nil {
		return output, nil
	}
	return output, classify(commandLine(binary, args), nil, err)
}

func classify(command string, output []byte, err error) error {
	var coder exitCoder
	if errors.As(err, &coder) && coder.ExitCode() >= 0 {
		return gserrors.NewExternalToolFailed(command, coder.ExitCode(), string(output), err)
	}
	return gserrors.NewExternalToolUnavailable(command, err)
}

// DefaultExecutor is a package-level default executor using RealCommander.
var DefaultExecutor = NewCommandExecutor(nil)
