// Package config loads runtime configuration for the Tasklists CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c / --config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags that were explicitly set, which override earlier values.
//
// Supported flags (see RegisterFlags)
//
//	-c, --config string      path to config file
//	-f, --file string        users file ("" keeps accounts in memory only)
//	    --log-level string   debug, info, warn or error
//	    --attempts int       login attempts before giving up
//
// # File schema
//
//	{
//	  "users_file": "users.yaml",
//	  "log_level": "warn",
//	  "max_login_attempts": 3
//	}
//
// Keys missing from the file keep their default values.
package config
