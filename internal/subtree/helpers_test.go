package subtree

import (
	"bytes"
	"testing"

	"github.com/gitstu/gitstu/internal/config"
	"github.com/gitstu/gitstu/internal/ui"
)

// captureOutput redirects ui status output for the duration of the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := ui.Output
	ui.Output = &buf
	t.Cleanup(func() { ui.Output = previous })
	return &buf
}

func remote(alias string) *config.Remote {
	return &config.Remote{Alias: alias}
}

func sampleRegistry() *config.Registry {
	return &config.Registry{
		Subtrees: []config.SubtreeEntry{
			{Name: "a", Prefix: "libs/a", Branch: "release", Remote: remote("a-remote")},
			{Name: "b", Prefix: "libs/b", Branch: "main", Remote: remote("b-remote")},
			{Name: "c", Prefix: "libs/c", Branch: "release", Remote: remote("c-remote")},
			{Name: "d", Prefix: "libs/d"},
		},
	}
}

func names(entries []config.SubtreeEntry) []string {
	var out []string
	for _, entry := range entries {
		out = append(out, entry.Name)
	}
	return out
}
