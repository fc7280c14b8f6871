package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rewined/labelgrid/internal/catalog"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(serverEnvVar, "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerBind != defaultServerBind {
		t.Fatalf("ServerBind = %q, want %q", cfg.ServerBind, defaultServerBind)
	}
	if cfg.MatchLimit != catalog.DefaultMatchLimit {
		t.Fatalf("MatchLimit = %d, want %d", cfg.MatchLimit, catalog.DefaultMatchLimit)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	t.Setenv(serverEnvVar, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
server_bind = "  10.0.0.5:9999  "
match_limit = 5
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerBind != "10.0.0.5:9999" {
		t.Fatalf("ServerBind = %q, want %q", cfg.ServerBind, "10.0.0.5:9999")
	}
	if cfg.MatchLimit != 5 {
		t.Fatalf("MatchLimit = %d, want 5", cfg.MatchLimit)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv(serverEnvVar, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
server_bind = "   "
match_limit = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerBind != defaultServerBind {
		t.Fatalf("ServerBind = %q, want %q", cfg.ServerBind, defaultServerBind)
	}
	if cfg.MatchLimit != catalog.DefaultMatchLimit {
		t.Fatalf("MatchLimit = %d, want %d", cfg.MatchLimit, catalog.DefaultMatchLimit)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`server_bind = "file:1234"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(serverEnvVar, "env:5678")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerBind != "env:5678" {
		t.Fatalf("ServerBind = %q, want env override env:5678", cfg.ServerBind)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`server_bind = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
