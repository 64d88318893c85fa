package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitstu/gitstu/internal/config"
	gserrors "github.com/gitstu/gitstu/internal/errors"
	"github.com/gitstu/gitstu/internal/subtree"
	"github.com/gitstu/gitstu/internal/ui"
)

// syncFlags are the flags shared by add, pull and push.
type syncFlags struct {
	All           bool
	WithBranch    string
	WithBranchSet bool
	Branch        string
	ToBranch      string
	Remote        string
	Prefix        string
	Squash        bool
}

func readSyncFlags(cmd *cobra.Command) syncFlags {
	return syncFlags{
		All:           mustGetBool(cmd, "all"),
		WithBranch:    mustGetString(cmd, "with-branch"),
		WithBranchSet: cmd.Flags().Changed("with-branch"),
		Branch:        mustGetString(cmd, "branch"),
		ToBranch:      mustGetString(cmd, "to-branch"),
		Remote:        mustGetString(cmd, "remote"),
		Prefix:        mustGetString(cmd, "prefix"),
		Squash:        mustGetBool(cmd, "squash"),
	}
}

// buildRequest validates the positional SUBTREE and BRANCH arguments against
// the flags. Every rejection wraps ErrInvalidInvocation.
func buildRequest(command subtree.Command, args []string, flags syncFlags) (subtree.Request, error) {
	req := subtree.Request{
		Command: command,
		Overrides: subtree.Overrides{
			BranchFlag: flags.Branch,
			ToBranch:   flags.ToBranch,
			Remote:     flags.Remote,
			Prefix:     flags.Prefix,
			Squash:     flags.Squash,
		},
	}

	switch {
	case len(args) > 2:
		return req, invalid("expected at most SUBTREE and BRANCH, got %d arguments", len(args))
	case flags.All && len(args) > 0:
		return req, invalid("--all cannot be combined with a subtree name")
	case !flags.All && len(args) == 0:
		if flags.WithBranchSet {
			return req, invalid("--with-branch requires --all")
		}
		return req, invalid("a subtree name or --all is required")
	case flags.WithBranchSet && !flags.All:
		return req, invalid("--with-branch requires --all")
	case len(args) == 2 && (flags.Branch != "" || flags.ToBranch != ""):
		return req, invalid("BRANCH cannot be combined with --branch or --to-branch")
	}

	switch {
	case flags.All && flags.WithBranchSet:
		req.Target = subtree.AllWithBranch(flags.WithBranch)
	case flags.All:
		req.Target = subtree.All()
	default:
		req.Target = subtree.Named(args[0])
	}

	if len(args) == 2 {
		req.Overrides.Branch = args[1]
	}
	return req, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", gserrors.ErrInvalidInvocation, fmt.Sprintf(format, args...))
}

// runSync loads the registry, runs the request and saves the registry once,
// and only if the run changed it. Entries completed before a failure are
// saved before the failure is returned.
func runSync(ctx context.Context, pc *ProjectContext, req subtree.Request) (*subtree.Result, error) {
	reg, err := pc.LoadRegistry()
	if err != nil {
		return nil, err
	}
	loaded := reg.Clone()

	result, runErr := pc.Engine().Run(ctx, reg, req)

	if !reg.Equal(loaded) {
		if err := pc.SaveRegistry(reg); err != nil {
			return result, errors.Join(runErr, err)
		}
		if result != nil && len(result.Updated) > 0 {
			ui.PrintInfo(fmt.Sprintf("Updated %s for %d subtree(s)", config.FileName, len(result.Updated)))
		}
	}

	if runErr != nil {
		return result, runErr
	}

	if len(result.Synced) > 0 {
		ui.PrintDone(fmt.Sprintf("%s complete for %s", req.Command, pluralSubtrees(len(result.Synced))))
	}
	return result, nil
}

func pluralSubtrees(n int) string {
	if n == 1 {
		return "1 subtree"
	}
	return fmt.Sprintf("%d subtrees", n)
}

// newSyncRunE builds the RunE shared by add, pull and push.
func newSyncRunE(command subtree.Command) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		req, err := buildRequest(command, args, readSyncFlags(cmd))
		if err != nil {
			return err
		}

		pc, err := OpenProjectFromCWD(cmd)
		if err != nil {
			return err
		}
		defer pc.Close()

		_, err = runSync(cmd.Context(), pc, req)
		return err
	}
}
