package service

import (
	"fmt"
	"time"

	"dogfetch/internal/adapter"
	"dogfetch/internal/logger"
	"dogfetch/internal/store"
)

// ClientServices bundles every application service the TUI needs.
type ClientServices struct {
	AuthService      ClientAuthService
	SearchService    ClientSearchService
	FavoritesService ClientFavoritesService
	PurgeJob         ClientPurgeJob
}

// NewClientServices wires the service layer. sessionTTL bounds the persisted
// login flag; a non-positive value falls back to the store default.
func NewClientServices(localStore store.LocalStorage, catalog adapter.CatalogAdapter, sessionTTL time.Duration, log *logger.Logger) (*ClientServices, error) {
	searchSvc, err := NewClientSearchService(catalog, log)
	if err != nil {
		return nil, fmt.Errorf("create search service: %w", err)
	}

	return &ClientServices{
		AuthService:      NewClientAuthService(localStore, catalog, sessionTTL, log),
		SearchService:    searchSvc,
		FavoritesService: NewClientFavoritesService(localStore, catalog, log),
		PurgeJob:         NewClientPurgeJob(localStore, log),
	}, nil
}
