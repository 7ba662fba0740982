package config

import (
	"net/url"

	"dogfetch/internal/pagination"
)

// validate checks that the final [ClientConfig] satisfies all application
// invariants before it is used at startup. Defaults have already been applied,
// so any remaining zero or out-of-range value came from an explicit source.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *ClientConfig) validate() error {
	if u, err := url.Parse(cfg.Adapter.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.FilePath == "" || cfg.Storage.DefaultTTL <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.UI.PageSize < 1 || cfg.UI.PageSize > pagination.MaxPageSize {
		return ErrInvalidUIConfigs
	}

	if cfg.Workers.PurgeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
