package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gserrors "github.com/gitstu/gitstu/internal/errors"
)

func TestFormPrompter_NonInteractive(t *testing.T) {
	prompter := NewFormPrompter(true)

	_, err := prompter.Input("branch", "master")
	require.Error(t, err)
	assert.True(t, errors.Is(err, gserrors.ErrPromptFailed))
	assert.Contains(t, err.Error(), "branch")

	_, err = prompter.Confirm("Save branch?")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotInteractive))
}

func TestRequireValue(t *testing.T) {
	assert.Error(t, requireValue("remote url", "")(""))
	assert.Error(t, requireValue("remote url", "")("   "))
	assert.NoError(t, requireValue("remote url", "")("git@example.com:x.git"))
	assert.NoError(t, requireValue("branch", "master")(""))
}

func TestScriptedPrompter(t *testing.T) {
	prompter := NewScriptedPrompter("vendor/lib", "")
	prompter.Confirms = []bool{false}

	prefix, err := prompter.Input("prefix", "lib")
	require.NoError(t, err)
	assert.Equal(t, "vendor/lib", prefix)

	branch, err := prompter.Input("branch", "master")
	require.NoError(t, err)
	assert.Equal(t, "master", branch)

	ok, err := prompter.Confirm("Save?")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = prompter.Input("extra", "")
	assert.True(t, errors.Is(err, gserrors.ErrPromptFailed))

	assert.Equal(t, []string{"prefix [lib]", "branch [master]", "confirm: Save?", "extra []"}, prompter.Asked)
	assert.Equal(t, 1, prompter.ConfirmCount())
}
