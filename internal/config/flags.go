package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a catalog service base URL
//	-f local storage file path (":memory:" for a volatile store)
//	-ttl default lifetime for stored entries (e.g., "1h")
//	-page-size number of dogs per results page
//	-purge-interval expired-entry sweep interval (e.g., "5m")
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var storageFilePath string
	var defaultTTL time.Duration
	var pageSize int
	var purgeInterval time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&baseURL, "a", "", "Catalog service base URL")
	flag.StringVar(&storageFilePath, "f", "", "Local storage file path")
	flag.DurationVar(&defaultTTL, "ttl", 0, "Default entry lifetime (e.g., 1h)")
	flag.IntVar(&pageSize, "page-size", 0, "Dogs per results page")
	flag.DurationVar(&purgeInterval, "purge-interval", 0, "Expired-entry sweep interval (e.g., 5m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			FilePath:   storageFilePath,
			DefaultTTL: defaultTTL,
		},
		UI: UI{
			PageSize: pageSize,
		},
		Workers: Workers{
			PurgeInterval: purgeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
