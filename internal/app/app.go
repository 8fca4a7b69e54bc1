package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pacer/internal/api"
	"github.com/five82/pacer/internal/config"
	"github.com/five82/pacer/internal/diary"
	"github.com/five82/pacer/internal/prefs"
	"github.com/five82/pacer/internal/ui"
)

// Options configure the pacer application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pacer/prefs.toml
	// Date is the diary page opened at startup; empty means today.
	Date string
}

// Run boots the pacer TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, client, err := connect(opts.ConfigPath)
	if err != nil {
		return err
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	date := diary.Today()
	if opts.Date != "" {
		if date, err = diary.Parse(opts.Date); err != nil {
			return err
		}
	}

	closeLog, err := logToFile(cfg.LogPath())
	if err != nil {
		return err
	}
	defer closeLog()
	log.Printf("pacer starting against %s", client.BaseURL())

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		Config:    cfg,
		ThemeName: userPrefs.Theme,
		Route:     userPrefs.Route,
		Date:      date,
		PrefsPath: prefsPath,
	})
}

// connect loads the config and builds an API client carrying its token.
func connect(configPath string) (config.Config, *api.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load pacer config: %w", err)
	}
	client, err := api.NewClient(cfg.APIURL)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("init api client: %w", err)
	}
	client.SetToken(cfg.APIToken)
	return cfg, client, nil
}

// logToFile sends the standard logger to path. The terminal belongs to the
// TUI while it runs.
func logToFile(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "pacer")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
