package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Catalog.PageSize != 100 {
		t.Errorf("expected page size 100, got %d", cfg.Catalog.PageSize)
	}
	if cfg.Catalog.MaxRecords != 10000 {
		t.Errorf("expected max records 10000, got %d", cfg.Catalog.MaxRecords)
	}
	if cfg.Documents.FetchTimeoutSeconds != 30 {
		t.Errorf("expected 30s fetch timeout, got %d", cfg.Documents.FetchTimeoutSeconds)
	}
	if !strings.HasPrefix(cfg.Documents.Host, "https://www.boamp.fr") {
		t.Errorf("unexpected document host: %s", cfg.Documents.Host)
	}
	if cfg.Documents.RequestsPerSecond <= 0 {
		t.Errorf("requests per second must be positive, got %f", cfg.Documents.RequestsPerSecond)
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written config: %v", err)
	}

	content := string(data)
	for _, want := range []string{"catalog:", "documents:", "server:", "requests_per_second"} {
		if !strings.Contains(content, want) {
			t.Errorf("written config missing %q", want)
		}
	}
}

func TestManagerLoadsDefaults(t *testing.T) {
	cm, err := NewManager("")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	cfg := cm.Get()
	if cfg.Catalog.URL == "" {
		t.Error("expected catalog URL default to be set")
	}
	if cfg.Server.Port == "" {
		t.Error("expected server port default to be set")
	}
}
