package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/jfmartel/boampwatch/internal/config"
	"github.com/jfmartel/boampwatch/internal/testutil"
)

// startServer boots a real server on a free port and returns its base URL.
func startServer(t *testing.T) string {
	t.Helper()

	cfg := testutil.NewServerConfig(t)
	cfg.WriteConfig(t, "catalog:\n  market_type: Travaux\n")

	mgr, err := config.NewManager(cfg.ConfigFile)
	if err != nil {
		t.Fatalf("config manager: %v", err)
	}

	srv, err := New(Config{
		Host:          cfg.Host,
		Port:          cfg.Port,
		ConfigManager: mgr,
		Logger:        cfg.Logger,
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Start(ctx)
	}()

	starter := testutil.StartServer{Cancel: cancel, Done: done}
	t.Cleanup(starter.Stop)

	if err := testutil.WaitForServer(cfg.URL(), 10*time.Second); err != nil {
		t.Fatalf("server never became ready: %v", err)
	}
	return cfg.URL()
}

func TestServerLifecycle(t *testing.T) {
	url := startServer(t)

	client := testutil.HTTPClient()
	resp, err := client.Get(url + "/health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d, want 200", resp.StatusCode)
	}

	var health struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "ok" {
		t.Errorf("health = %q, want ok", health.Status)
	}
}

func TestServerGracefulShutdown(t *testing.T) {
	cfg := testutil.NewServerConfig(t)
	cfg.WriteConfig(t, "catalog:\n  market_type: Travaux\n")

	mgr, err := config.NewManager(cfg.ConfigFile)
	if err != nil {
		t.Fatalf("config manager: %v", err)
	}
	srv, err := New(Config{
		Host:          cfg.Host,
		Port:          cfg.Port,
		ConfigManager: mgr,
		Logger:        cfg.Logger,
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Start(ctx)
	}()

	if err := testutil.WaitForServer(cfg.URL(), 10*time.Second); err != nil {
		cancel()
		t.Fatalf("server never became ready: %v", err)
	}
	if !srv.IsRunning() {
		t.Error("IsRunning() = false while serving")
	}

	cancel()
	if err := testutil.WaitForShutdown(done, 10*time.Second); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if srv.IsRunning() {
		t.Error("IsRunning() = true after shutdown")
	}
}
