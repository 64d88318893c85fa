package exec

import (
	"context"
	"fmt"
	"strings"
)

// MockCommander records git invocations instead of running them, so tests can
// assert the exact subtree commands a run produced.
type MockCommander struct {
	// Responses holds canned results keyed by command line ("git fetch lib").
	// Commands without a response succeed with no output.
	Responses map[string]CommandResponse

	// Calls lists every invocation in order.
	Calls []CommandCall
}

// CommandCall is one recorded invocation.
type CommandCall struct {
	Dir     string
	Command string
	Args    []string
}

// Line renders the call as "command arg1 arg2 ...".
func (c CommandCall) Line() string {
	return commandLine(c.Command, c.Args)
}

// CommandResponse is the canned result of a command line.
type CommandResponse struct {
	Output []byte
	Err    error
}

func NewMockCommander() *MockCommander {
	return &MockCommander{Responses: make(map[string]CommandResponse)}
}

// Run implements Commander.
func (m *MockCommander) Run(ctx context.Context, dir string, command string, args ...string) ([]byte, error) {
	call := CommandCall{Dir: dir, Command: command, Args: args}
	m.Calls = append(m.Calls, call)

	resp := m.Responses[call.Line()]
	return resp.Output, resp.Err
}

// SetResponse makes command with args return output and err.
func (m *MockCommander) SetResponse(command string, args []string, output []byte, err error) {
	m.Responses[commandLine(command, args)] = CommandResponse{Output: output, Err: err}
}

// LastCall returns the most recent invocation, or nil.
func (m *MockCommander) LastCall() *CommandCall {
	if len(m.Calls) == 0 {
		return nil
	}
	return &m.Calls[len(m.Calls)-1]
}

func (m *MockCommander) CallCount() int {
	return len(m.Calls)
}

// WasCalled reports whether command ran with exactly args.
func (m *MockCommander) WasCalled(command string, args ...string) bool {
	want := commandLine(command, args)
	for _, call := range m.Calls {
		if call.Line() == want {
			return true
		}
	}
	return false
}

// CommandLines returns every recorded invocation rendered by CommandCall.Line.
func (m *MockCommander) CommandLines() []string {
	lines := make([]string, 0, len(m.Calls))
	for _, call := range m.Calls {
		lines = append(lines, call.Line())
	}
	return lines
}

func commandLine(command string, args []string) string {
	if len(args) == 0 {
		return command
	}
	return command + " " + strings.Join(args, " ")
}

// ExitError simulates a process that ran and exited with a non-zero status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode returns the simulated exit status.
func (e *ExitError) ExitCode() int {
	return e.Code
}
