package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/bookbin/internal/config"
)

func TestDefaultPath(t *testing.T) {
	p := config.DefaultPath()
	if p == "" {
		t.Fatal("DefaultPath returned empty string")
	}
	if !strings.HasSuffix(p, filepath.Join("bookbin", "config.yml")) {
		t.Errorf("DefaultPath = %q, should end with bookbin/config.yml", p)
	}
}

func TestPath_Precedence(t *testing.T) {
	t.Setenv("BOOKBIN_CONFIG", "/env/config.yml")
	if got := config.Path("/flag/config.yml"); got != "/flag/config.yml" {
		t.Errorf("Path(flag) = %q, want flag path", got)
	}
	if got := config.Path(""); got != "/env/config.yml" {
		t.Errorf("Path(\"\") = %q, want env path", got)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Driver != "file" {
		t.Errorf("Storage.Driver = %q, want file", cfg.Storage.Driver)
	}
	if cfg.Explore.Count != 10 {
		t.Errorf("Explore.Count = %d, want 10", cfg.Explore.Count)
	}
	if cfg.Notify.Duration != 5*time.Second {
		t.Errorf("Notify.Duration = %v, want 5s", cfg.Notify.Duration)
	}
	if cfg.Explore.BaseURL != "https://fakerapi.it/api/v1" {
		t.Errorf("Explore.BaseURL = %q", cfg.Explore.BaseURL)
	}
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "storage:\n  driver: sqlite\n  dir: /tmp/books\nexplore:\n  count: 3\n  timeout: 2s\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Driver != "sqlite" || cfg.Storage.Dir != "/tmp/books" {
		t.Errorf("Storage = %+v", cfg.Storage)
	}
	if cfg.Storage.Location() != filepath.Join("/tmp/books", "bookbin.db") {
		t.Errorf("Location = %q", cfg.Storage.Location())
	}
	if cfg.Explore.Count != 3 || cfg.Explore.Timeout != 2*time.Second {
		t.Errorf("Explore = %+v", cfg.Explore)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want default text", cfg.Log.Format)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BOOKBIN_STORAGE_DRIVER", "badger")
	t.Setenv("BOOKBIN_EXPLORE_COUNT", "25")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Driver != "badger" {
		t.Errorf("Storage.Driver = %q, want badger", cfg.Storage.Driver)
	}
	if cfg.Explore.Count != 25 {
		t.Errorf("Explore.Count = %d, want 25", cfg.Explore.Count)
	}
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("BOOKBIN_STORAGE_DRIVER", "floppy")
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("expected error for unknown storage driver")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("storage: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	cfg := config.Default()
	cfg.Storage.Driver = "badger"
	cfg.Notify.Duration = 3 * time.Second

	if err := config.Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Storage.Driver != "badger" {
		t.Errorf("Storage.Driver = %q, want badger", got.Storage.Driver)
	}
	if got.Notify.Duration != 3*time.Second {
		t.Errorf("Notify.Duration = %v, want 3s", got.Notify.Duration)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got := config.ExpandHome("~/books"); got != filepath.Join(home, "books") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := config.ExpandHome("/abs"); got != "/abs" {
		t.Errorf("ExpandHome(/abs) = %q", got)
	}
}
