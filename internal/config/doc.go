// Package config handles loading and parsing the pacer configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pacer/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/pacer/config.toml
//   - API endpoint: 127.0.0.1:8000
//   - Log directory: ~/.local/share/pacer
//   - Log file: <log_dir>/pacer.log
//   - Login route: /login
//
// # TOML Format
//
//	api_url = "127.0.0.1:8000"
//	api_token = "..."
//	log_dir = "~/.local/share/pacer"
//	login_route = "/login"
//
//	[patterns]
//	Weight = '^[0-9]+(\.[0-9]*)?$'
//
// The patterns table maps a diary field label (case-insensitive) to a
// regular expression. A configured pattern replaces the rule pacer would
// otherwise derive from the field kind. Patterns are compiled at load time
// so a typo fails fast with a "parse config" error instead of silently
// blocking every edit.
//
// # Path Expansion
//
// Paths starting with ~ are expanded to the user's home directory and made
// absolute.
package config
