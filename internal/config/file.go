package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used exclusively for config file unmarshalling.
// Pointer fields tell keys that are absent from keys set to a zero value.
type fileConfig struct {
	UsersFile        *string `json:"users_file" yaml:"users_file"`
	LogLevel         *string `json:"log_level" yaml:"log_level"`
	MaxLoginAttempts *int    `json:"max_login_attempts" yaml:"max_login_attempts"`
}

// parseFile overlays cfg with values read from the file at path.
// An empty path means no config file and leaves cfg unchanged.
func parseFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return err
	}

	if fc.UsersFile != nil {
		cfg.UsersFile = *fc.UsersFile
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.MaxLoginAttempts != nil {
		cfg.MaxLoginAttempts = *fc.MaxLoginAttempts
	}
	return nil
}
