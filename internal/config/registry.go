package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	gserrors "github.com/gitstu/gitstu/internal/errors"
)

// Mode selects how every subtree in the registry is integrated.
type Mode string

const (
	// ModeSubtree keeps upstream history through git subtree.
	ModeSubtree Mode = "subtree"
	// ModeCustom grafts the upstream tree without its history.
	ModeCustom Mode = "custom"
)

// Effective returns the mode in force, defaulting an unset mode to ModeSubtree.
func (m Mode) Effective() Mode {
	if m == "" {
		return ModeSubtree
	}
	return m
}

// Remote locates the upstream of a subtree. The registry accepts either a
// plain string (the alias or location passed to git) or an object with both
// url and alias.
type Remote struct {
	URL   string `mapstructure:"url" json:"url" yaml:"url,omitempty"`
	Alias string `mapstructure:"alias" json:"alias" yaml:"alias"`
}

// Target returns the repository argument handed to git.
func (r Remote) Target() string {
	if r.Alias != "" {
		return r.Alias
	}
	return r.URL
}

// Names reports whether name refers to this remote, by alias or location.
// A nil remote names nothing.
func (r *Remote) Names(name string) bool {
	if r == nil || name == "" {
		return false
	}
	return name == r.Target() || name == r.Alias || name == r.URL
}

// IsSimple reports whether the remote round-trips as a plain string.
func (r Remote) IsSimple() bool {
	return r.URL == "" || r.URL == r.Alias || r.Alias == ""
}

// String formats the remote for prompts and listings.
func (r Remote) String() string {
	if r.IsSimple() {
		return r.Target()
	}
	return fmt.Sprintf("%s (%s)", r.Alias, r.URL)
}

// MarshalJSON writes the plain string form when no information is lost.
func (r Remote) MarshalJSON() ([]byte, error) {
	if r.IsSimple() {
		return json.Marshal(r.Target())
	}
	type remoteObject Remote
	return json.Marshal(remoteObject(r))
}

// SubtreeEntry is one declared subtree integration.
type SubtreeEntry struct {
	Name   string  `mapstructure:"name" json:"name"`
	Prefix string  `mapstructure:"prefix" json:"prefix"`
	Branch string  `mapstructure:"branch" json:"branch,omitempty"`
	Remote *Remote `mapstructure:"remote" json:"remote,omitempty"`
}

// HasRemote reports whether a remote has been persisted for the entry.
func (e SubtreeEntry) HasRemote() bool {
	return e.Remote != nil && e.Remote.Target() != ""
}

// Registry is the content of the .gitstu file.
type Registry struct {
	Mode     Mode           `mapstructure:"mode" json:"mode,omitempty"`
	Squash   *bool          `mapstructure:"squash" json:"squash,omitempty"`
	Subtrees []SubtreeEntry `mapstructure:"subtrees" json:"subtrees"`
}

// SquashDefault returns the registry-wide squash default.
func (r *Registry) SquashDefault() bool {
	return r.Squash != nil && *r.Squash
}

// Find returns the entry with the given name, or nil.
func (r *Registry) Find(name string) *SubtreeEntry {
	for i := range r.Subtrees {
		if r.Subtrees[i].Name == name {
			return &r.Subtrees[i]
		}
	}
	return nil
}

// Append adds an entry to the in-memory registry.
func (r *Registry) Append(entry SubtreeEntry) {
	r.Subtrees = append(r.Subtrees, entry)
}

// Clone returns a deep copy of the registry.
func (r *Registry) Clone() *Registry {
	clone := &Registry{Mode: r.Mode}
	if r.Squash != nil {
		squash := *r.Squash
		clone.Squash = &squash
	}
	clone.Subtrees = make([]SubtreeEntry, len(r.Subtrees))
	for i, entry := range r.Subtrees {
		clone.Subtrees[i] = entry.clone()
	}
	return clone
}

func (e SubtreeEntry) clone() SubtreeEntry {
	if e.Remote != nil {
		remote := *e.Remote
		e.Remote = &remote
	}
	return e
}

// Equal reports whether both registries serialise to the same canonical file.
func (r *Registry) Equal(other *Registry) bool {
	a, errA := Encode(r)
	b, errB := Encode(other)
	return errA == nil && errB == nil && bytes.Equal(a, b)
}

// Merge puts updated ahead of existing and keeps the first entry per name, so
// copies resolved during this run win over stale ones from disk.
func Merge(existing, updated []SubtreeEntry) []SubtreeEntry {
	seen := make(map[string]bool, len(existing)+len(updated))
	merged := make([]SubtreeEntry, 0, len(existing)+len(updated))
	for _, entries := range [][]SubtreeEntry{updated, existing} {
		for _, entry := range entries {
			if seen[entry.Name] {
				continue
			}
			seen[entry.Name] = true
			merged = append(merged, entry)
		}
	}
	return merged
}

// Path returns the registry location for a repository root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Load reads the registry from path.
func Load(path string) (*Registry, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s not found (run 'gitstu init' first): %w", path, gserrors.ErrConfigNotFound)
		}
		return nil, fmt.Errorf("reading %s: %v: %w", path, err, gserrors.ErrConfigMalformed)
	}

	var registry Registry
	err := v.Unmarshal(&registry, viper.DecodeHook(remoteDecodeHook()), strictTypes)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %v: %w", path, err, gserrors.ErrConfigMalformed)
	}

	if err := registry.validate(); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &registry, nil
}

// strictTypes rejects values of the wrong JSON type instead of coercing them.
func strictTypes(c *mapstructure.DecoderConfig) {
	c.WeaklyTypedInput = false
}

// remoteDecodeHook turns the plain string form of a remote into its object form.
func remoteDecodeHook() mapstructure.DecodeHookFunc {
	remoteType := reflect.TypeOf(Remote{})
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != remoteType || from.Kind() != reflect.String {
			return data, nil
		}
		return map[string]interface{}{"alias": data}, nil
	}
}

func (r *Registry) validate() error {
	switch r.Mode {
	case "", ModeSubtree, ModeCustom:
	default:
		return fmt.Errorf("unknown mode %q: %w", r.Mode, gserrors.ErrConfigMalformed)
	}

	for i, entry := range r.Subtrees {
		if entry.Name == "" {
			return fmt.Errorf("subtree #%d has no name: %w", i+1, gserrors.ErrConfigMalformed)
		}
		if entry.Prefix == "" {
			return fmt.Errorf("subtree %q has no prefix: %w", entry.Name, gserrors.ErrConfigMalformed)
		}
	}
	return nil
}

// Encode renders the canonical file content: subtrees de-duplicated and
// sorted by name, unset fields omitted.
func Encode(registry *Registry) ([]byte, error) {
	canonical := *registry
	canonical.Subtrees = Merge(nil, registry.Subtrees)
	sort.SliceStable(canonical.Subtrees, func(i, j int) bool {
		return canonical.Subtrees[i].Name < canonical.Subtrees[j].Name
	})

	data, err := json.MarshalIndent(canonical, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Save writes the registry to path atomically.
func Save(path string, registry *Registry) error {
	data, err := Encode(registry)
	if err != nil {
		return fmt.Errorf("marshaling registry: %v: %w", err, gserrors.ErrConfigWrite)
	}

	// Write to temp file first for atomic operation
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %v: %w", path, err, gserrors.ErrConfigWrite)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %v: %w", path, err, gserrors.ErrConfigWrite)
	}

	registry.Subtrees = Merge(nil, registry.Subtrees)
	sort.SliceStable(registry.Subtrees, func(i, j int) bool {
		return registry.Subtrees[i].Name < registry.Subtrees[j].Name
	})

	return nil
}

// Init creates an empty registry at path. It refuses to overwrite an existing one.
func Init(path string) (*Registry, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%s already exists: %w", path, gserrors.ErrConfigWrite)
	}

	registry := &Registry{Subtrees: []SubtreeEntry{}}
	if err := Save(path, registry); err != nil {
		return nil, err
	}
	return registry, nil
}
