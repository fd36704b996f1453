package main

import (
	"github.com/spf13/cobra"

	"github.com/jfmartel/boampwatch/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running boampwatch server via HTTP.

These commands require a running server (boampwatch serve).
Use --server to specify a custom server URL.

Examples:
  boampwatch api health                    # Check server health
  boampwatch api extract --date 2024-03-01 --keywords serrurerie --departments 75
  boampwatch api jobs progress <job_id>    # Poll an extraction job
  boampwatch api jobs summary <job_id> --table`,
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Extraction job commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8080", "Server URL",
	)

	// Top-level api commands
	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.ExtractEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.KeywordsEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.ExtractLinkEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.SwaggerEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.SwaggerUIEndpoint{}).Command(getServerURL))

	// Jobs as subcommand group
	for _, ep := range endpoints.JobCommands() {
		jobsCmd.AddCommand(ep.Command(getServerURL))
	}

	apiCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(apiCmd)
}
