package subtree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitstu/gitstu/internal/config"
	gserrors "github.com/gitstu/gitstu/internal/errors"
	"github.com/gitstu/gitstu/internal/ui"
)

func TestSelect_All(t *testing.T) {
	reg := sampleRegistry()

	selected, err := Select(reg, All(), CommandPull, Overrides{}, ui.NewScriptedPrompter())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, names(selected))
}

func TestSelect_AllWithBranch(t *testing.T) {
	reg := sampleRegistry()

	selected, err := Select(reg, AllWithBranch("release"), CommandPull, Overrides{}, ui.NewScriptedPrompter())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, names(selected))

	selected, err = Select(reg, AllWithBranch(""), CommandPull, Overrides{}, ui.NewScriptedPrompter())
	require.NoError(t, err)
	assert.Empty(t, selected, "entries without a branch never match")
}

func TestSelect_NamedFound(t *testing.T) {
	reg := sampleRegistry()
	prompter := ui.NewScriptedPrompter()

	selected, err := Select(reg, Named("b"), CommandAdd, Overrides{}, prompter)
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, "libs/b", selected[0].Prefix)
	assert.Empty(t, prompter.Asked)
	assert.Len(t, reg.Subtrees, 4)
}

func TestSelect_ReturnsCopies(t *testing.T) {
	reg := sampleRegistry()

	selected, err := Select(reg, Named("a"), CommandPull, Overrides{}, ui.NewScriptedPrompter())
	require.NoError(t, err)
	selected[0].Branch = "changed"

	assert.Equal(t, "release", reg.Find("a").Branch)
}

func TestSelect_UnknownNameNotAdd(t *testing.T) {
	for _, cmd := range []Command{CommandPull, CommandPush} {
		t.Run(string(cmd), func(t *testing.T) {
			reg := sampleRegistry()
			before := reg.Clone()
			prompter := ui.NewScriptedPrompter()

			selected, err := Select(reg, Named("missing"), cmd, Overrides{}, prompter)

			require.Error(t, err)
			assert.True(t, errors.Is(err, gserrors.ErrSubtreeNotRegistered))
			assert.Nil(t, selected)
			assert.Empty(t, prompter.Asked)
			assert.True(t, reg.Equal(before))
		})
	}
}

func TestSelect_UnknownNameUnderAdd_FromOverrides(t *testing.T) {
	reg := sampleRegistry()
	prompter := ui.NewScriptedPrompter()
	overrides := Overrides{Prefix: "vendor/new", BranchFlag: "develop", Remote: "upstream"}

	selected, err := Select(reg, Named("new"), CommandAdd, overrides, prompter)
	require.NoError(t, err)

	expected := config.SubtreeEntry{Name: "new", Prefix: "vendor/new", Branch: "develop", Remote: remote("upstream")}
	require.Len(t, selected, 1)
	assert.Equal(t, expected, selected[0])
	assert.Empty(t, prompter.Asked)

	require.Len(t, reg.Subtrees, 5)
	assert.Equal(t, expected, reg.Subtrees[4])
}

func TestSelect_UnknownNameUnderAdd_Prompts(t *testing.T) {
	reg := &config.Registry{}
	prompter := ui.NewScriptedPrompter("", "", "git@example.com:team/lib.git", "")

	selected, err := Select(reg, Named("lib"), CommandAdd, Overrides{}, prompter)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"prefix [lib]",
		"branch [master]",
		"remote url []",
		"remote alias [lib]",
	}, prompter.Asked)

	require.Len(t, selected, 1)
	assert.Equal(t, config.SubtreeEntry{
		Name:   "lib",
		Prefix: "lib",
		Branch: "master",
		Remote: &config.Remote{URL: "git@example.com:team/lib.git", Alias: "lib"},
	}, selected[0])
	assert.Len(t, reg.Subtrees, 1)
}

func TestSelect_UnknownNameUnderAdd_PositionalBranch(t *testing.T) {
	reg := &config.Registry{}
	prompter := ui.NewScriptedPrompter("vendor/lib")

	selected, err := Select(reg, Named("lib"), CommandAdd, Overrides{Branch: "v2", ToBranch: "ignored", Remote: "lib"}, prompter)
	require.NoError(t, err)

	assert.Equal(t, "v2", selected[0].Branch)
	assert.Equal(t, "vendor/lib", selected[0].Prefix)
}

func TestSelect_UnknownNameUnderAdd_PromptFailure(t *testing.T) {
	reg := sampleRegistry()
	prompter := ui.NewScriptedPrompter()
	prompter.InputErr = ui.ErrUserAborted

	_, err := Select(reg, Named("new"), CommandAdd, Overrides{}, prompter)

	require.Error(t, err)
	assert.True(t, errors.Is(err, gserrors.ErrPromptFailed))
	assert.Len(t, reg.Subtrees, 4)
}

func TestOverrides_BranchFor(t *testing.T) {
	o := Overrides{ToBranch: "to", BranchFlag: "flag"}
	assert.Equal(t, "to", o.BranchFor(CommandPull))
	assert.Equal(t, "to", o.BranchFor(CommandPush))
	assert.Equal(t, "flag", o.BranchFor(CommandAdd))

	o.Branch = "positional"
	assert.Equal(t, "positional", o.BranchFor(CommandPull))
	assert.Equal(t, "positional", o.BranchFor(CommandAdd))

	assert.Equal(t, "", Overrides{}.BranchFor(CommandPush))
}

func TestTargetSpec(t *testing.T) {
	assert.False(t, Named("lib").IsAll())
	assert.True(t, All().IsAll())
	assert.True(t, AllWithBranch("main").IsAll())
	assert.Equal(t, "lib", Named("lib").String())
	assert.Equal(t, "subtrees on branch main", AllWithBranch("main").String())
}
