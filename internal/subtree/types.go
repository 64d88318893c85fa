package subtree

import "github.com/gitstu/gitstu/internal/config"

// Command is the sync operation requested on the command line.
type Command string

const (
	CommandAdd  Command = "add"
	CommandPull Command = "pull"
	CommandPush Command = "push"
)

type specKind int

const (
	specNamed specKind = iota
	specAll
	specAllWithBranch
)

// TargetSpec names the entries a run operates on.
type TargetSpec struct {
	kind   specKind
	name   string
	branch string
}

// Named targets the single entry called name.
func Named(name string) TargetSpec {
	return TargetSpec{kind: specNamed, name: name}
}

// All targets every registered entry.
func All() TargetSpec {
	return TargetSpec{kind: specAll}
}

// AllWithBranch targets the entries whose persisted branch is exactly branch.
func AllWithBranch(branch string) TargetSpec {
	return TargetSpec{kind: specAllWithBranch, branch: branch}
}

// IsAll reports whether the spec selects more than a named entry.
func (s TargetSpec) IsAll() bool {
	return s.kind != specNamed
}

func (s TargetSpec) String() string {
	switch s.kind {
	case specAll:
		return "all subtrees"
	case specAllWithBranch:
		return "subtrees on branch " + s.branch
	default:
		return s.name
	}
}

// Overrides are the per-invocation values given on the command line.
type Overrides struct {
	// Branch is the positional BRANCH argument.
	Branch string
	// BranchFlag is --branch.
	BranchFlag string
	// ToBranch is --to-branch, the branch to pull from or push to this time only.
	ToBranch string
	Remote   string
	Prefix   string
	Squash   bool
}

// BranchFor returns the branch override that applies to cmd. add honours the
// positional argument and --branch; pull and push also accept --to-branch.
func (o Overrides) BranchFor(cmd Command) string {
	candidates := []string{o.Branch, o.ToBranch, o.BranchFlag}
	if cmd == CommandAdd {
		candidates = []string{o.Branch, o.BranchFlag}
	}
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// Target is the effective branch and remote for one entry in one run.
type Target struct {
	Branch string
	Remote config.Remote
}
