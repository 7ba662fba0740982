package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid catalog client settings
	// (for example, an unparseable base URL or non-positive timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local store settings
	// (for example, an empty file path or non-positive TTL).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidUIConfigs indicates invalid presentation settings
	// (for example, a page size outside the allowed range).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings
	// (for example, a non-positive purge interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
