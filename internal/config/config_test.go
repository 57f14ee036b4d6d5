package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.General.RefreshMinutes != 15 {
		t.Errorf("default refresh = %d, want 15", cfg.General.RefreshMinutes)
	}
	if cfg.General.Language != "en" {
		t.Errorf("default language = %q, want en", cfg.General.Language)
	}
	if cfg.Account.Username != "" {
		t.Errorf("default username = %q, want empty", cfg.Account.Username)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Account.Username = "alice@example.be"
	cfg.General.Language = "nl"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Account.Username != "alice@example.be" {
		t.Errorf("username = %q, want alice@example.be", loaded.Account.Username)
	}
	if loaded.General.Language != "nl" {
		t.Errorf("language = %q, want nl", loaded.General.Language)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	partial := "[account]\nusername = \"bob\"\n"
	if err := os.WriteFile(path, []byte(partial), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Account.Username != "bob" {
		t.Errorf("username = %q, want bob", cfg.Account.Username)
	}
	if cfg.General.TimeoutSeconds != 10 {
		t.Errorf("timeout = %d, want default 10", cfg.General.TimeoutSeconds)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	os.WriteFile(path, []byte("{{invalid toml}}"), 0644)

	_, err := Load(path)
	if err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestSave_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "perms.toml")

	if err := Save(DefaultConfig(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("file permissions = %o, want 0600", perm)
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Timeout(); got != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", got)
	}
	if got := cfg.RefreshInterval(); got != 15*time.Minute {
		t.Errorf("RefreshInterval = %v, want 15m", got)
	}

	cfg.General.TimeoutSeconds = -5
	cfg.General.RefreshMinutes = 0
	if got := cfg.Timeout(); got != 10*time.Second {
		t.Errorf("Timeout with bad value = %v, want fallback 10s", got)
	}
	if got := cfg.RefreshInterval(); got != 15*time.Minute {
		t.Errorf("RefreshInterval with bad value = %v, want fallback 15m", got)
	}
}

func TestCachePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Path = "/tmp/custom.db"
	if got := cfg.CachePath(); got != "/tmp/custom.db" {
		t.Errorf("CachePath = %q, want /tmp/custom.db", got)
	}

	cfg.Cache.Path = ""
	if got := cfg.CachePath(); got == "" {
		t.Error("CachePath with empty override should fall back to default")
	}
}

func TestDefaultPath_NotEmpty(t *testing.T) {
	p := DefaultPath()
	if p == "" {
		t.Error("DefaultPath should not be empty")
	}
}

func TestStateDir_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")
	want := filepath.Join("/tmp/xdg-state", "telemeter", "sessions.db")
	if got := DefaultCachePath(); got != want {
		t.Errorf("DefaultCachePath = %q, want %q", got, want)
	}
}
