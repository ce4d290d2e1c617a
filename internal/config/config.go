package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings orchid reads at startup.
type Config struct {
	APIBase        string
	FavoritesPath  string
	LogPath        string
	RequestTimeout time.Duration
	RefreshEvery   time.Duration
}

// EnvAPIBase overrides api_base when set.
const EnvAPIBase = "ORCHID_API_BASE"

const (
	defaultConfigPath     = "~/.config/orchid/config.toml"
	defaultAPIBase        = "127.0.0.1:7490"
	defaultFavoritesPath  = "~/.local/share/orchid/favorites.json"
	defaultLogPath        = "~/.local/state/orchid/orchid.log"
	defaultRequestTimeout = 10 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBase:        defaultAPIBase,
		FavoritesPath:  mustExpand(defaultFavoritesPath),
		LogPath:        mustExpand(defaultLogPath),
		RequestTimeout: defaultRequestTimeout,
	}
}

// Load locates and parses the orchid config, falling back to defaults when missing.
// ORCHID_API_BASE, from the environment or a .env file in the working
// directory, takes precedence over the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg, err := loadFile(resolved)
	if err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	if env := strings.TrimSpace(os.Getenv(EnvAPIBase)); env != "" {
		cfg.APIBase = env
	}
	return cfg, nil
}

func loadFile(resolved string) (Config, error) {
	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
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
		APIBase        string `toml:"api_base"`
		FavoritesPath  string `toml:"favorites_path"`
		LogPath        string `toml:"log_path"`
		RequestTimeout int    `toml:"request_timeout_seconds"`
		Refresh        int    `toml:"refresh_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBase); v != "" {
		cfg.APIBase = v
	}
	if v := strings.TrimSpace(raw.FavoritesPath); v != "" {
		cfg.FavoritesPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = mustExpand(v)
	}
	if raw.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeout) * time.Second
	}
	if raw.Refresh > 0 {
		cfg.RefreshEvery = time.Duration(raw.Refresh) * time.Second
	}
	return cfg, nil
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
