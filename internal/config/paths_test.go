package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewPaths(t *testing.T) {
	home := os.Getenv("HOME")
	paths := NewPaths()

	wantDir := filepath.Join(home, ".config", "burnish")
	if paths.ConfigDir != wantDir {
		t.Errorf("ConfigDir = %q, want %q", paths.ConfigDir, wantDir)
	}

	if !strings.HasSuffix(paths.ConfigFile, "config.yaml") {
		t.Errorf("ConfigFile = %q, want suffix %q", paths.ConfigFile, "config.yaml")
	}
	if !strings.HasPrefix(paths.ConfigFile, paths.ConfigDir) {
		t.Errorf("ConfigFile %q not inside ConfigDir %q", paths.ConfigFile, paths.ConfigDir)
	}
}

func TestNewPathsWithOverrides(t *testing.T) {
	tempDir := t.TempDir()
	paths := NewPathsWithOverrides(tempDir)

	if paths.ConfigDir != tempDir {
		t.Errorf("ConfigDir = %q, want %q", paths.ConfigDir, tempDir)
	}

	want := filepath.Join(tempDir, "config.yaml")
	if paths.ConfigFile != want {
		t.Errorf("ConfigFile = %q, want %q", paths.ConfigFile, want)
	}
}
