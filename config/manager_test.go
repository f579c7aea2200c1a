package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestManagerCreatesAndUpdates(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManager(WithConfigDir(dir))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	path := filepath.Join(dir, "config.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	cfg := mgr.Get()
	cfg.WatchlistPath = filepath.Join(dir, "other_watchlist.json")
	if err := mgr.Update(cfg); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got := mgr.Get().WatchlistPath; got != cfg.WatchlistPath {
		t.Fatalf("expected watchlist path %s, got %s", cfg.WatchlistPath, got)
	}
}

func TestManagerRejectsInvalidUpdate(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManager(WithConfigDir(dir))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	cfg := mgr.Get()
	cfg.DataDir = ""
	if err := mgr.Update(cfg); err == nil {
		t.Fatalf("expected validation error for empty data_dir")
	}
}

func TestManagerWatchReloads(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManager(WithConfigDir(dir))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan struct{}, 1)
	if err := mgr.Watch(ctx, func(cfg Config) {
		reloaded <- struct{}{}
	}); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	cfg := mgr.Get()
	cfg.ProjectDir = filepath.Join(dir, "changed")
	if err := writeConfigFile(mgr.Path(), cfg); err != nil {
		t.Fatalf("writeConfigFile: %v", err)
	}

	select {
	case <-reloaded:
	case <-time.After(2 * time.Second):
		t.Fatalf("watcher did not fire on config change")
	}
}

func TestFindProjectRootFrom(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, MarkerDir), 0o755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRootFrom(nested)
	if err != nil {
		t.Fatalf("FindProjectRootFrom: %v", err)
	}
	if got != root {
		t.Fatalf("expected root %s, got %s", root, got)
	}
}

func TestFindProjectRootFromLegacyLayout(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "data"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "config.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRootFrom(filepath.Join(root, "data"))
	if err != nil {
		t.Fatalf("FindProjectRootFrom: %v", err)
	}
	if got != root {
		t.Fatalf("expected root %s, got %s", root, got)
	}
}
