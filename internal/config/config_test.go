package config

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	// Keep the loader away from any real user config. xdg caches its
	// paths at init, so force a re-read.
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	xdg.Reload()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if want := filepath.Join(home, ".bashrc"); cfg.ProfileFile != want {
		t.Errorf("ProfileFile = %q, want %q", cfg.ProfileFile, want)
	}
	if cfg.Size.Threshold != "1K" {
		t.Errorf("Size.Threshold = %q, want 1K", cfg.Size.Threshold)
	}
	if cfg.Size.Depth != 1 {
		t.Errorf("Size.Depth = %d, want 1", cfg.Size.Depth)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	xdg.Reload()
	t.Setenv("LUKA_PROFILE_FILE", "/custom/profile")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ProfileFile != "/custom/profile" {
		t.Errorf("ProfileFile = %q, want env override", cfg.ProfileFile)
	}
}
