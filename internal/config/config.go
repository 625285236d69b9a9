package config

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tasklists/internal/logging"
	"github.com/spf13/pflag"
)

// Config holds runtime settings for the Tasklists CLI.
//
// Fields:
//   - UsersFile: path of the users file; empty disables persistence.
//   - LogLevel: minimum level of diagnostic logs written to stderr.
//   - MaxLoginAttempts: how many failed logins the CLI tolerates in a row.
type Config struct {
	UsersFile        string
	LogLevel         string
	MaxLoginAttempts int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.UsersFile = "users.yaml"
	c.LogLevel = "warn"
	c.MaxLoginAttempts = 3
}

// Validate reports values no later stage can work with.
func (c *Config) Validate() error {
	if c.MaxLoginAttempts < 1 {
		return errors.New("max login attempts must be at least 1")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if any) and the flags set in fs. Later sources take
// precedence over earlier ones. fs must have been prepared by RegisterFlags
// and already parsed.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := parseFile(cfg, path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if err := parseFlags(cfg, fs); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
