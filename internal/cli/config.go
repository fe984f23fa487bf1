package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds CLI defaults read from the config file. Flags always win
// over file values.
type Config struct {
	// Format is the default render output format (svg, png, dot, mermaid).
	Format string `toml:"format"`

	// CacheDir overrides the artifact cache location.
	CacheDir string `toml:"cache_dir"`

	// Serve holds defaults for the serve command.
	Serve ServeConfig `toml:"serve"`
}

// ServeConfig holds HTTP facade defaults.
type ServeConfig struct {
	// Addr is the listen address (host:port).
	Addr string `toml:"addr"`

	// Redis is the address of a Redis cache backend. Empty uses the
	// file cache.
	Redis string `toml:"redis"`
}

func defaultConfig() Config {
	return Config{
		Format: "svg",
		Serve:  ServeConfig{Addr: ":8080"},
	}
}

// configPath returns ~/.config/arbor/config.toml.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "arbor", "config.toml"), nil
}

// loadConfig reads the config file, falling back to defaults when the
// file does not exist. A malformed file is an error; silently ignoring
// it would make debugging confusing.
func loadConfig() (Config, error) {
	cfg := defaultConfig()
	path, err := configPath()
	if err != nil {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

// cacheDir returns the configured cache directory, defaulting to
// ~/.cache/arbor.
func cacheDir(cfg Config) (string, error) {
	if cfg.CacheDir != "" {
		return cfg.CacheDir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(base, "arbor"), nil
}
