package subtree

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/gitstu/gitstu/internal/config"
	"github.com/gitstu/gitstu/internal/exec"
	"github.com/gitstu/gitstu/internal/ui"
)

// Request is one add, pull or push invocation.
type Request struct {
	Command   Command
	Target    TargetSpec
	Overrides Overrides
}

// persists reports whether resolved values may be written back. A push to
// another branch, or across all subtrees, must not move an entry's home.
func (r Request) persists() bool {
	if r.Command != CommandPush {
		return true
	}
	return !r.Target.IsAll() && r.Overrides.ToBranch == ""
}

// Result summarises a run.
type Result struct {
	// Synced lists the entries whose git command succeeded, in order.
	Synced []string
	// Updated lists the entries the gatekeeper changed.
	Updated []string
}

// Engine drives select, resolve, dispatch and persist for a request.
type Engine struct {
	Root              string
	Prompter          ui.Prompter
	Executor          *exec.CommandExecutor
	Logger            *log.Logger
	ConfirmGatesWrite bool
}

// Run processes the request against reg. Entries run sequentially and the
// batch stops at the first failure. Updates gathered before the failure are
// merged into reg either way, so the caller saves once and then reports err.
func (e *Engine) Run(ctx context.Context, reg *config.Registry, req Request) (*Result, error) {
	logger := loggerOr(e.Logger)

	entries, err := Select(reg, req.Target, req.Command, req.Overrides, e.Prompter)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		logger.Warn("no subtrees selected", "target", req.Target.String())
		return &Result{}, nil
	}

	squash := req.Overrides.Squash || reg.SquashDefault()
	resolver := &Resolver{Prompter: e.Prompter}
	dispatcher := &Dispatcher{
		Strategy: StrategyFor(reg.Mode),
		Executor: e.Executor,
		Root:     e.Root,
		Logger:   logger,
	}
	gatekeeper := &Gatekeeper{
		Prompter:          e.Prompter,
		Logger:            logger,
		ConfirmGatesWrite: e.ConfirmGatesWrite,
	}

	logger.Debug("running", "command", req.Command, "target", req.Target.String(), "mode", reg.Mode.Effective(), "squash", squash)

	result := &Result{}
	var updated []config.SubtreeEntry
	var runErr error

	for _, entry := range entries {
		target, err := resolver.Resolve(entry, req.Overrides.BranchFor(req.Command), req.Overrides.Remote)
		if err != nil {
			runErr = err
			break
		}

		if err := dispatcher.Dispatch(ctx, req.Command, entry, target, squash); err != nil {
			runErr = fmt.Errorf("%s %s: %w", req.Command, entry.Name, err)
			break
		}
		result.Synced = append(result.Synced, entry.Name)

		if req.persists() {
			if gatekeeper.MaybePersist(&entry, target).Any() {
				result.Updated = append(result.Updated, entry.Name)
			}
		}
		updated = append(updated, entry)
	}

	reg.Subtrees = config.Merge(reg.Subtrees, updated)

	if runErr != nil {
		if len(result.Synced) > 0 {
			logger.Warn("stopping after failure", "completed", len(result.Synced), "selected", len(entries))
		}
		return result, runErr
	}
	return result, nil
}
