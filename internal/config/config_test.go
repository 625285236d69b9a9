package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "users.yaml", c.UsersFile)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, 3, c.MaxLoginAttempts)
}

func TestLoadConfig_DefaultsWithoutFlags(t *testing.T) {
	cfg, err := LoadConfig(newFlagSet(t))

	require.NoError(t, err)
	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "users.yaml", cfg.UsersFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 3, cfg.MaxLoginAttempts)
}

func TestLoadConfig_Precedence(t *testing.T) {
	jsonPath := writeTemp(t, "cfg.json", `{"users_file": "from-json.yaml", "log_level": "debug"}`)

	t.Run("file overrides defaults, missing keys keep defaults", func(t *testing.T) {
		cfg, err := LoadConfig(newFlagSet(t, "-c", jsonPath))
		require.NoError(t, err)

		assert.Equal(t, "from-json.yaml", cfg.UsersFile)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 3, cfg.MaxLoginAttempts)
	})

	t.Run("flags override file", func(t *testing.T) {
		cfg, err := LoadConfig(newFlagSet(t, "--config", jsonPath, "-f", "from-flag.yaml", "--attempts", "5"))
		require.NoError(t, err)

		assert.Equal(t, "from-flag.yaml", cfg.UsersFile)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 5, cfg.MaxLoginAttempts)
	})

	t.Run("explicit empty users file disables persistence", func(t *testing.T) {
		cfg, err := LoadConfig(newFlagSet(t, "--file="))
		require.NoError(t, err)
		assert.Equal(t, "", cfg.UsersFile)
	})
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := writeTemp(t, "cfg.yml", "users_file: /var/lib/tasklists/users.yaml\nmax_login_attempts: 7\n")

	cfg, err := LoadConfig(newFlagSet(t, "-c", path))
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/tasklists/users.yaml", cfg.UsersFile)
	assert.Equal(t, 7, cfg.MaxLoginAttempts)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
	}{
		{"missing file", func(t *testing.T) []string {
			return []string{"-c", filepath.Join(t.TempDir(), "nope.json")}
		}},
		{"invalid json", func(t *testing.T) []string {
			return []string{"-c", writeTemp(t, "bad.json", `{ this is not valid json`)}
		}},
		{"invalid yaml", func(t *testing.T) []string {
			return []string{"-c", writeTemp(t, "bad.yaml", "users_file: [unclosed\n")}
		}},
		{"zero attempts", func(t *testing.T) []string {
			return []string{"--attempts", "0"}
		}},
		{"unknown log level", func(t *testing.T) []string {
			return []string{"--log-level", "loud"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(newFlagSet(t, tt.args(t)...))
			require.Error(t, err)
		})
	}
}

func TestParseFlags_OnlyChangedFlagsApply(t *testing.T) {
	cfg := &Config{UsersFile: "keep.yaml", LogLevel: "error", MaxLoginAttempts: 9}

	require.NoError(t, parseFlags(cfg, newFlagSet(t, "--log-level", "info")))

	assert.Equal(t, &Config{UsersFile: "keep.yaml", LogLevel: "info", MaxLoginAttempts: 9}, cfg)
}
