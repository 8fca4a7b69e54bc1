package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything pacer needs to reach the diary API.
type Config struct {
	APIURL     string
	APIToken   string
	LogDir     string
	LoginRoute string
	// Patterns override the kind-based validation rule for a field label.
	Patterns map[string]*regexp.Regexp
}

const (
	defaultConfigPath = "~/.config/pacer/config.toml"
	defaultLogDir     = "~/.local/share/pacer"
	defaultAPIURL     = "127.0.0.1:8000"
	defaultLoginRoute = "/login"
)

// Load locates and parses the pacer config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIURL: defaultAPIURL, LoginRoute: defaultLoginRoute}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.LogDir = mustExpand(defaultLogDir)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL     string            `toml:"api_url"`
		APIToken   string            `toml:"api_token"`
		LogDir     string            `toml:"log_dir"`
		LoginRoute string            `toml:"login_route"`
		Patterns   map[string]string `toml:"patterns"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIURL = strings.TrimSpace(raw.APIURL)
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	cfg.APIToken = strings.TrimSpace(raw.APIToken)

	cfg.LogDir = strings.TrimSpace(raw.LogDir)
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}
	cfg.LogDir = mustExpand(cfg.LogDir)

	if route := strings.TrimSpace(raw.LoginRoute); route != "" {
		cfg.LoginRoute = route
	}

	if len(raw.Patterns) > 0 {
		cfg.Patterns = make(map[string]*regexp.Regexp, len(raw.Patterns))
		for label, expr := range raw.Patterns {
			re, err := regexp.Compile(expr)
			if err != nil {
				return Config{}, fmt.Errorf("parse config: pattern for %q: %w", label, err)
			}
			cfg.Patterns[strings.ToLower(strings.TrimSpace(label))] = re
		}
	}

	return cfg, nil
}

// LogPath returns the path of the pacer log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/pacer.log")
	}
	return filepath.Join(c.LogDir, "pacer.log")
}

// PatternFor returns the configured pattern for a field label, if any.
func (c Config) PatternFor(label string) (*regexp.Regexp, bool) {
	re, ok := c.Patterns[strings.ToLower(strings.TrimSpace(label))]
	return re, ok
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
