package config

import (
	"fmt"
	"time"

	"dogfetch/internal/adapter"
	"dogfetch/internal/pagination"
	"dogfetch/internal/store"
)

// Defaults applied by [GetClientConfig] when a field is not set by any source.
const (
	DefaultStorageFilePath = "dogfetch_storage.json"
	DefaultPurgeInterval   = 5 * time.Minute
	DefaultRequestTimeout  = 15 * time.Second
)

// ClientAdapter holds network settings used by the catalog client.
type ClientAdapter struct {
	// BaseURL is the catalog service root.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage groups local store settings.
type ClientStorage struct {
	// FilePath is the storage file location, or ":memory:".
	FilePath string
	// DefaultTTL is the lifetime applied to stored entries.
	DefaultTTL time.Duration
}

// ClientUI holds presentation settings.
type ClientUI struct {
	// PageSize is the number of dogs shown per results page.
	PageSize int
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// PurgeInterval defines how often the expired-entry sweep runs.
	PurgeInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains catalog client settings.
	Adapter ClientAdapter
	// Storage contains local store settings.
	Storage ClientStorage
	// UI contains presentation settings.
	UI ClientUI
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the merged
// structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields relevant
// to the client runtime, fills in defaults for anything left unset, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			FilePath:   cfg.Storage.FilePath,
			DefaultTTL: cfg.Storage.DefaultTTL,
		},
		UI:      ClientUI{PageSize: cfg.UI.PageSize},
		Workers: ClientWorkers{PurgeInterval: cfg.Workers.PurgeInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = adapter.DefaultBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.FilePath == "" {
		cfg.Storage.FilePath = DefaultStorageFilePath
	}
	if cfg.Storage.DefaultTTL == 0 {
		cfg.Storage.DefaultTTL = store.DefaultTTL
	}
	if cfg.UI.PageSize == 0 {
		cfg.UI.PageSize = pagination.DefaultPageSize
	}
	if cfg.Workers.PurgeInterval == 0 {
		cfg.Workers.PurgeInterval = DefaultPurgeInterval
	}
}
