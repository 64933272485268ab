package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hueforge.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	saveDir := t.TempDir()
	path := writeConfig(t, `
save_directory = "`+filepath.ToSlash(saveDir)+`"
confirmations = false
state_backend = " SQLite "
surface_width = 64
surface_height = 2
verbose = true
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.SaveDirectory != saveDir {
		t.Errorf("SaveDirectory = %q, want %q", cfg.SaveDirectory, saveDir)
	}
	if cfg.Confirmations {
		t.Error("Confirmations = true")
	}
	if cfg.StateBackend != "sqlite" {
		t.Errorf("StateBackend = %q", cfg.StateBackend)
	}
	if cfg.SurfaceWidth != 64 {
		t.Errorf("SurfaceWidth = %d", cfg.SurfaceWidth)
	}
	if cfg.SurfaceHeight != minSurfaceHeight {
		t.Errorf("SurfaceHeight = %d, want it raised to %d", cfg.SurfaceHeight, minSurfaceHeight)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false")
	}
	if got := cfg.GetSavePath("a.html"); got != filepath.Join(saveDir, "a.html") {
		t.Errorf("GetSavePath = %q", got)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !cfg.Confirmations || cfg.StateBackend != "file" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.SurfaceWidth != defaultSurfaceWidth || cfg.SurfaceHeight != defaultSurfaceHeight {
		t.Errorf("surface = %dx%d", cfg.SurfaceWidth, cfg.SurfaceHeight)
	}
	if got := cfg.GetSavePath("a.html"); got != "a.html" {
		t.Errorf("GetSavePath without a save directory = %q", got)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "surface_width = [oops\n")
	cfg, err := loadConfig(path)
	if err == nil {
		t.Fatal("loadConfig accepted a malformed file")
	}
	if cfg == nil || cfg.SurfaceWidth != defaultSurfaceWidth {
		t.Errorf("malformed config did not fall back to defaults: %+v", cfg)
	}
}

func TestStatePath(t *testing.T) {
	cfg := &Config{StatePath: "/tmp/custom.db"}
	if got := cfg.statePath("state.db"); got != "/tmp/custom.db" {
		t.Errorf("statePath = %q", got)
	}
	cfg = &Config{}
	if got := cfg.statePath("state.json"); filepath.Base(got) != "state.json" {
		t.Errorf("statePath = %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	cfg := &Config{home: "/home/someone"}
	if got := cfg.expandPath("~/colors"); got != filepath.Join("/home/someone", "colors") {
		t.Errorf("expandPath(~/colors) = %q", got)
	}
	if got := cfg.expandPath(""); got != "" {
		t.Errorf("expandPath(\"\") = %q", got)
	}
	if got := cfg.expandPath("rel"); !filepath.IsAbs(got) {
		t.Errorf("expandPath(rel) = %q, want an absolute path", got)
	}
}
