package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jfmartel/boampwatch/internal/config"
	"github.com/jfmartel/boampwatch/internal/home"
	"github.com/jfmartel/boampwatch/internal/server"
	"github.com/jfmartel/boampwatch/internal/server/endpoints"

	// Registers the generated OpenAPI spec.
	_ "github.com/jfmartel/boampwatch/docs/swagger"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the boampwatch server",
	Long: `Start the boampwatch HTTP server.

The server exposes the extraction API:
  - POST /api/extract          - Start an extraction job
  - GET  /api/jobs/{id}        - Poll job progress
  - GET  /api/jobs/{id}/summary - Fetch the summary table

Configuration is hot-reloaded when the config file changes on disk.

Examples:
  boampwatch serve                 # Start on default port 8080
  boampwatch serve --port 3000     # Start on custom port
  boampwatch serve --host 0.0.0.0  # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}
		if cfgFile == "" && h.ConfigExists() {
			cfgFile = h.ConfigPath()
		}

		cfgMgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfgMgr.WatchConfig()

		host := serveHost
		port := servePort
		if !cmd.Flags().Changed("host") && cfgMgr.Get().Server.Host != "" {
			host = cfgMgr.Get().Server.Host
		}
		if !cmd.Flags().Changed("port") && cfgMgr.Get().Server.Port != "" {
			port = cfgMgr.Get().Server.Port
		}

		srv, err := server.New(server.Config{
			Host:            host,
			Port:            port,
			ConfigManager:   cfgMgr,
			SwaggerSpecPath: endpoints.GetSwaggerSpecPath(),
			Logger:          logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
