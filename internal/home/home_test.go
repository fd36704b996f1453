package home

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_DefaultPath(t *testing.T) {
	dir, err := New("")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if filepath.Base(dir.Path()) != DefaultDirName {
		t.Errorf("default path = %q, want it to end in %q", dir.Path(), DefaultDirName)
	}
}

func TestNew_ExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	dir, err := New(tmpDir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if dir.Path() != tmpDir {
		t.Errorf("path = %q, want %q", dir.Path(), tmpDir)
	}
	if dir.ExportsPath() != filepath.Join(tmpDir, ExportsDirName) {
		t.Errorf("exports path = %q", dir.ExportsPath())
	}
	if dir.ConfigPath() != filepath.Join(tmpDir, ConfigFileName) {
		t.Errorf("config path = %q", dir.ConfigPath())
	}
}

func TestDir_EnsureExists(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested")
	dir, _ := New(tmpDir)

	if dir.Exists() {
		t.Error("directory should not exist before EnsureExists")
	}

	if err := dir.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}

	if !dir.Exists() {
		t.Error("directory should exist after EnsureExists")
	}

	if _, err := os.Stat(dir.ExportsPath()); os.IsNotExist(err) {
		t.Error("exports directory should exist after EnsureExists")
	}
}

func TestDir_ConfigExists(t *testing.T) {
	tmpDir := t.TempDir()
	dir, _ := New(tmpDir)

	if dir.ConfigExists() {
		t.Error("config should not exist initially")
	}

	if err := os.WriteFile(dir.ConfigPath(), []byte("catalog:\n  market_type: Travaux\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if !dir.ConfigExists() {
		t.Error("config should exist after creation")
	}
}
