package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/rewined/labelgrid/internal/catalog"
)

// Config captures the settings labelgrid needs to reach the label service.
type Config struct {
	ServerBind string
	MatchLimit int
}

const (
	defaultConfigPath = "~/.config/labelgrid/config.toml"
	defaultServerBind = "127.0.0.1:5000"
)

// serverEnvVar overrides server_bind after the config file is read; main
// loads .env first so the override works in both shells and service files.
const serverEnvVar = "LABELGRID_SERVER"

// Load locates and parses the labelgrid config, falling back to defaults
// when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{ServerBind: defaultServerBind, MatchLimit: catalog.DefaultMatchLimit}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ServerBind string `toml:"server_bind"`
		MatchLimit int    `toml:"match_limit"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.ServerBind = strings.TrimSpace(raw.ServerBind)
	if cfg.ServerBind == "" {
		cfg.ServerBind = defaultServerBind
	}
	if raw.MatchLimit > 0 {
		cfg.MatchLimit = raw.MatchLimit
	}

	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if bind := strings.TrimSpace(os.Getenv(serverEnvVar)); bind != "" {
		cfg.ServerBind = bind
	}
	return cfg
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
