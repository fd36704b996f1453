// Package server wires the extraction pipeline behind the HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jfmartel/boampwatch/internal/api"
	"github.com/jfmartel/boampwatch/internal/boamp"
	"github.com/jfmartel/boampwatch/internal/config"
	"github.com/jfmartel/boampwatch/internal/jobs"
	"github.com/jfmartel/boampwatch/internal/pdfdoc"
	"github.com/jfmartel/boampwatch/internal/server/endpoints"
	"github.com/jfmartel/boampwatch/internal/svcctx"
)

// Server is the main boampwatch HTTP server. It owns the job store and the
// pipeline components, and rebuilds catalog and retriever settings when the
// configuration changes on disk.
type Server struct {
	httpServer *http.Server
	jobStore   *jobs.Store
	configMgr  *config.Manager
	logger     *slog.Logger

	// services holds all core services for context enrichment
	services   *svcctx.Services
	servicesMu sync.RWMutex

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8080)
	Port string
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// SwaggerSpecPath overrides the swagger.json location
	SwaggerSpecPath string
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.ConfigManager == nil {
		return nil, errors.New("config manager is required")
	}

	s := &Server{
		jobStore:  jobs.NewStore(),
		configMgr: cfg.ConfigManager,
		logger:    cfg.Logger,
	}

	s.rebuildServices(cfg.ConfigManager.Get())
	cfg.ConfigManager.OnChange(func(c *config.Config) {
		s.rebuildServices(c)
		cfg.Logger.Info("pipeline components reloaded from config")
	})

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{SwaggerSpecPath: cfg.SwaggerSpecPath}) {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireInit)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// rebuildServices constructs the pipeline components from the current
// configuration. The job store is kept: jobs submitted before a reload stay
// visible, and their in-flight runs keep the components they started with.
func (s *Server) rebuildServices(c *config.Config) {
	catalog := boamp.NewClient(boamp.Config{
		URL:        c.Catalog.URL,
		MarketType: c.Catalog.MarketType,
		PageSize:   c.Catalog.PageSize,
		MaxRecords: c.Catalog.MaxRecords,
		Logger:     s.logger,
	})
	retriever := pdfdoc.NewRetriever(pdfdoc.RetrieverConfig{
		Host:              c.Documents.Host,
		FetchTimeout:      time.Duration(c.Documents.FetchTimeoutSeconds) * time.Second,
		RequestsPerSecond: c.Documents.RequestsPerSecond,
		Logger:            s.logger,
	})
	runner := jobs.NewRunner(s.jobStore, catalog, retriever, s.logger)

	s.servicesMu.Lock()
	s.services = &svcctx.Services{
		JobStore:  s.jobStore,
		Runner:    runner,
		Retriever: retriever,
		ConfigMgr: s.configMgr,
		Logger:    s.logger,
	}
	s.servicesMu.Unlock()
}

// Start starts the server. It blocks until the context is cancelled or an
// error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// shutdown performs graceful shutdown of the HTTP server.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// JobStore returns the in-memory job store.
func (s *Server) JobStore() *jobs.Store {
	return s.jobStore
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler returns the server's root HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withServices wraps a handler to enrich the request context with services.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.servicesMu.RLock()
		services := s.services
		s.servicesMu.RUnlock()

		ctx := r.Context()
		if services != nil {
			ctx = svcctx.WithServices(ctx, services)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireInit is middleware that ensures the pipeline services are ready.
// Returns 503 Service Unavailable until they are.
func (s *Server) requireInit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.servicesMu.RLock()
		ready := s.services != nil && s.services.Runner != nil
		s.servicesMu.RUnlock()
		if !ready {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"server not fully initialized"}`))
			return
		}
		next(w, r)
	}
}
