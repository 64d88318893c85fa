package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings holds per-invocation behaviour switches. They come from command
// line flags and GITSTU_* environment variables, never from .gitstu.
type Settings struct {
	Verbose bool `mapstructure:"verbose"`
	// ConfirmGatesWrite makes a declined "save to .gitstu?" confirmation skip
	// the write. Off by default: resolved values are written regardless.
	ConfirmGatesWrite bool   `mapstructure:"confirm_gates_write"`
	NonInteractive    bool   `mapstructure:"non_interactive"`
	LogFile           string `mapstructure:"log_file"`

	// Rotation of LogFile, in megabytes, files and days.
	LogMaxSize    int `mapstructure:"log_max_size"`
	LogMaxBackups int `mapstructure:"log_max_backups"`
	LogMaxAge     int `mapstructure:"log_max_age"`
}

var settingsFlags = map[string]string{
	"verbose":             "verbose",
	"confirm_gates_write": "confirm-gates-write",
	"non_interactive":     "non-interactive",
}

// LoadSettings resolves settings from flags (when set) and the environment.
func LoadSettings(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("gitstu")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("verbose", false)
	v.SetDefault("confirm_gates_write", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size", 1)
	v.SetDefault("log_max_backups", 2)
	v.SetDefault("log_max_age", 30)

	if flags != nil {
		for key, flag := range settingsFlags {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", flag, err)
				}
			}
		}
	}

	// GITSTU_DEBUG is accepted as an alias for verbose output
	if err := v.BindEnv("verbose", "GITSTU_VERBOSE", "GITSTU_DEBUG"); err != nil {
		return nil, fmt.Errorf("binding environment: %w", err)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	return &settings, nil
}
