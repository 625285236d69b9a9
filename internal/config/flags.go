package config

import "github.com/spf13/pflag"

const (
	flagConfig   = "config"
	flagFile     = "file"
	flagLogLevel = "log-level"
	flagAttempts = "attempts"
)

// RegisterFlags declares the configuration flags on fs. Defaults shown in the
// help text are the built-in ones; only flags the user sets override the
// config file.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(flagConfig, "c", "", "path to config file (.json, .yaml)")
	fs.StringP(flagFile, "f", d.UsersFile, "users file (empty keeps accounts in memory only)")
	fs.String(flagLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	fs.Int(flagAttempts, d.MaxLoginAttempts, "login attempts before giving up")
}

// parseFlags copies explicitly set flags into cfg.
func parseFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error

	if fs.Changed(flagFile) {
		if cfg.UsersFile, err = fs.GetString(flagFile); err != nil {
			return err
		}
	}
	if fs.Changed(flagLogLevel) {
		if cfg.LogLevel, err = fs.GetString(flagLogLevel); err != nil {
			return err
		}
	}
	if fs.Changed(flagAttempts) {
		if cfg.MaxLoginAttempts, err = fs.GetInt(flagAttempts); err != nil {
			return err
		}
	}

	return nil
}
