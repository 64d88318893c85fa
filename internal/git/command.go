package git

import "strings"

// Binary is the executable every Command runs.
const Binary = "git"

// Command is a git invocation built from pure inputs, so it can be asserted
// without being run.
type Command struct {
	Args []string
}

// NewCommand creates a Command from git arguments.
func NewCommand(args ...string) Command {
	return Command{Args: args}
}

// String renders the command line as a user would type it.
func (c Command) String() string {
	return Binary + " " + strings.Join(c.Args, " ")
}

// FetchCommand refreshes the remote-tracking branches of remote.
func FetchCommand(remote string) Command {
	return NewCommand("fetch", remote)
}
