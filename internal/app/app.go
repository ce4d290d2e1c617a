package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/orchid/internal/browse"
	"github.com/five82/orchid/internal/catalog"
	"github.com/five82/orchid/internal/config"
	"github.com/five82/orchid/internal/favorites"
	"github.com/five82/orchid/internal/prefs"
	"github.com/five82/orchid/internal/session"
	"github.com/five82/orchid/internal/state"
	"github.com/five82/orchid/internal/ui"
)

// Options configure the orchid application.
type Options struct {
	ConfigPath   string
	PrefsPath    string // empty uses default ~/.config/orchid/prefs.toml
	APIBase      string // overrides config and environment when set
	RefreshEvery int    // seconds; zero keeps the configured value
}

// Run boots the orchid TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.APIBase); v != "" {
		cfg.APIBase = v
	}
	if opts.RefreshEvery > 0 {
		cfg.RefreshEvery = time.Duration(opts.RefreshEvery) * time.Second
	}

	logFile, err := openLog(cfg.LogPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := catalog.NewClient(cfg.APIBase, catalog.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	favs := favorites.NewStore(favorites.NewFileCache(cfg.FavoritesPath))
	if err := favs.Reload(); err != nil {
		log.Printf("favorites unavailable, starting empty: %v", err)
	}

	model := browse.New(client, &state.Store{}, favs)
	gate := &session.Gate{}

	StartRefresher(ctx, model, func() bool {
		return gate.State() == session.Authenticated
	}, cfg.RefreshEvery)

	log.Printf("orchid starting against %s", client.BaseURL())
	return ui.Run(ui.Options{
		Context:   ctx,
		Model:     model,
		Gate:      gate,
		Auth:      client,
		APIBase:   client.BaseURL(),
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogPath,
	})
}

// openLog routes the standard logger to path so log output does not corrupt
// the terminal while the TUI runs.
func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "orchid")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
