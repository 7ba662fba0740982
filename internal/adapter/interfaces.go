// Package adapter provides the transport layer for communicating with the
// remote dog-adoption catalog service.
//
// The primary abstraction is [CatalogAdapter], which decouples the service
// layer from the HTTP details. The shipped implementation
// ([NewHTTPCatalogAdapter]) talks REST with a cookie-based session; error
// values defined in errors.go are mapped from HTTP status codes so that
// callers can use [errors.Is] for transport-agnostic handling (e.g.
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"dogfetch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_adapter_mock.go -package=mock

// CatalogAdapter defines transport-agnostic communication with the remote
// dog-adoption catalog. Implementations are responsible for serialisation,
// session-cookie management, and mapping transport-level errors to the
// sentinel values defined in this package.
type CatalogAdapter interface {
	// Login authenticates with the catalog using a name and email. On
	// success the session cookie issued by the catalog is retained and
	// attached to all subsequent requests.
	Login(ctx context.Context, user models.User) error

	// Logout invalidates the current catalog session.
	Logout(ctx context.Context) error

	// Breeds fetches the full list of breed names known to the catalog.
	Breeds(ctx context.Context) ([]string, error)

	// SearchDogs runs a filtered, sorted, paginated dog search. The result
	// carries matching dog ids and the total match count; full records are
	// resolved separately via Dogs.
	SearchDogs(ctx context.Context, query models.DogSearchQuery) (models.DogSearchResult, error)

	// Dogs resolves up to [MaxBatchSize] dog ids to full records in one
	// request. An empty id list returns an empty slice without issuing a
	// call; a list over the limit returns [ErrBatchTooLarge].
	Dogs(ctx context.Context, ids []string) ([]models.Dog, error)

	// Match submits the candidate id list to the catalog's matchmaker and
	// returns the id of the single chosen dog.
	Match(ctx context.Context, ids []string) (string, error)

	// Locations resolves up to [MaxBatchSize] zip codes to location records.
	Locations(ctx context.Context, zipCodes []string) ([]models.Location, error)

	// SearchLocations runs a location search combining city text, state
	// codes, and an optional bounding box, returning a page of matching zip
	// code records plus the total match count.
	SearchLocations(ctx context.Context, query models.LocationSearchQuery) (models.LocationSearchResult, error)
}
