package endpoints

import (
	"github.com/jfmartel/boampwatch/internal/api"
)

// Config holds dependencies needed by some endpoints.
type Config struct {
	SwaggerSpecPath string
}

// All returns all endpoint instances.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		// System endpoints
		&HealthEndpoint{},

		// Extraction job endpoints
		&ExtractEndpoint{},
		&ProgressEndpoint{},
		&ResultsEndpoint{},
		&SummaryEndpoint{},
		&DownloadResultsEndpoint{},
		&DownloadSummaryEndpoint{},

		// Supporting endpoints
		&KeywordsEndpoint{},
		&ExtractLinkEndpoint{},

		// Swagger/OpenAPI endpoints
		&SwaggerEndpoint{SpecPath: cfg.SwaggerSpecPath},
		&SwaggerUIEndpoint{},
	}
}

// JobCommands returns the endpoints whose CLI commands are grouped under
// the "jobs" subcommand.
func JobCommands() []api.Endpoint {
	return []api.Endpoint{
		&ProgressEndpoint{},
		&ResultsEndpoint{},
		&SummaryEndpoint{},
		&DownloadResultsEndpoint{},
		&DownloadSummaryEndpoint{},
	}
}
