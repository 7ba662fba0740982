package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the dogfetch
// application. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds settings for the remote catalog HTTP client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds settings for the local key-value store.
	Storage Storage `envPrefix:"STORAGE_"`

	// UI holds presentation-layer settings.
	UI UI `envPrefix:"UI_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings for the outbound catalog client.
type Adapter struct {
	// BaseURL is the catalog service root, scheme included
	// (e.g. "https://frontend-take-home-service.fetch.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings for the JSON-file-backed local store.
type Storage struct {
	// FilePath is the path of the local storage file, or ":memory:" for a
	// volatile store.
	// Env: STORAGE_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// DefaultTTL is the lifetime applied to stored entries (e.g. "1h").
	// Env: STORAGE_DEFAULT_TTL
	DefaultTTL time.Duration `env:"DEFAULT_TTL"`
}

// UI holds presentation settings.
type UI struct {
	// PageSize is the number of dogs shown per results page.
	// Env: UI_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// PurgeInterval defines how often expired storage entries are swept
	// (e.g. "5m").
	// Env: WORKERS_PURGE_INTERVAL
	PurgeInterval time.Duration `env:"PURGE_INTERVAL"`
}

// GetStructuredConfig loads and merges the application configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source fails
// to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
