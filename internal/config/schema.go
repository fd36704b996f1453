package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds boampwatch configuration.
// Stored at: ./config.yaml or ~/.boampwatch/config.yaml
type Config struct {
	Server    ServerCfg    `mapstructure:"server" yaml:"server"`
	Catalog   CatalogCfg   `mapstructure:"catalog" yaml:"catalog"`
	Documents DocumentsCfg `mapstructure:"documents" yaml:"documents"`
}

// ServerCfg configures the HTTP server.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}

// CatalogCfg configures the BOAMP records catalog client.
type CatalogCfg struct {
	// URL is the opendatasoft records endpoint.
	URL string `mapstructure:"url" yaml:"url"`
	// MarketType is the server-side notice category filter.
	MarketType string `mapstructure:"market_type" yaml:"market_type"`
	// PageSize is the number of records requested per page.
	PageSize int `mapstructure:"page_size" yaml:"page_size"`
	// MaxRecords caps how many records a single job will accumulate.
	MaxRecords int `mapstructure:"max_records" yaml:"max_records"`
}

// DocumentsCfg configures notice document retrieval.
type DocumentsCfg struct {
	// Host is the base URL documents are derived from.
	Host string `mapstructure:"host" yaml:"host"`
	// FetchTimeoutSeconds bounds a single document download.
	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds" yaml:"fetch_timeout_seconds"`
	// RequestsPerSecond paces document downloads against the remote host.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: "8080",
		},
		Catalog: CatalogCfg{
			URL:        "https://boamp-datadila.opendatasoft.com/api/explore/v2.1/catalog/datasets/boamp/records",
			MarketType: "Travaux",
			PageSize:   100,
			MaxRecords: 10000,
		},
		Documents: DocumentsCfg{
			Host:                "https://www.boamp.fr/telechargements/FILES/PDF",
			FetchTimeoutSeconds: 30,
			RequestsPerSecond:   2.0,
		},
	}
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# boampwatch configuration
# Values may also be set via BOAMPWATCH_* environment variables

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
