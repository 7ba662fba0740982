// Package service contains the client's application services: session
// handling, the search cycle, the favorites/match flow, and the storage
// purge job. Services sit between the TUI and the transport/storage layers
// and own all orchestration rules.
package service

import (
	"context"
	"time"

	"dogfetch/models"
)

// ClientAuthService manages the catalog session and the persisted login flag.
type ClientAuthService interface {
	// Login authenticates against the catalog and records the session flag
	// in local storage with the configured time-to-live.
	Login(ctx context.Context, user models.User) error

	// SessionActive reports whether an unexpired login flag is present in
	// local storage. The catalog may still reject requests (the server
	// session is an HttpOnly cookie held only in memory); callers fall back
	// to the login screen on [adapter.ErrUnauthorized].
	SessionActive() bool

	// Logout invalidates the catalog session and clears the login flag.
	Logout(ctx context.Context) error
}

// ClientSearchService runs the search cycle against the catalog.
type ClientSearchService interface {
	// Begin opens a new search generation and returns its token. Responses
	// carrying an older token are stale and must be discarded.
	Begin() uint64

	// Breeds returns the full breed list from the catalog. The list is not
	// generation-scoped: it is fetched once per session and never filtered.
	Breeds(ctx context.Context) ([]string, error)

	// FetchPage runs the dog search for the given query and resolves the
	// returned ids to full records through the record cache. Returns
	// [ErrStaleResponse] when a newer generation was opened while the
	// request was in flight.
	FetchPage(ctx context.Context, gen uint64, query models.DogSearchQuery) (SearchPage, error)

	// ResolveLocations runs a location search and returns the matching zip
	// codes plus the total match count, with the same staleness contract as
	// FetchPage.
	ResolveLocations(ctx context.Context, gen uint64, query models.LocationSearchQuery) ([]string, int, error)
}

// ClientFavoritesService owns the persisted liked-dog set and the match flow.
type ClientFavoritesService interface {
	// Liked returns the persisted liked-dog id list, empty when the entry
	// is absent or expired.
	Liked() []string

	// IsLiked reports membership of dogID in the liked set.
	IsLiked(dogID string) bool

	// ToggleLike flips membership of dogID and persists the updated set
	// immediately. It returns the new set.
	ToggleLike(dogID string) ([]string, error)

	// LikedDogs resolves the liked set to full dog records.
	LikedDogs(ctx context.Context) ([]models.Dog, error)

	// RequestMatch submits the liked set to the catalog matchmaker and
	// resolves the chosen id to a full record. Returns [ErrNoLikedDogs]
	// without issuing any call when the set is empty.
	RequestMatch(ctx context.Context) (models.Dog, error)

	// FirstMatchVisit reports whether the match screen is being seen for
	// the first time within the flag's validity window, and sets the
	// persisted flag as a side effect.
	FirstMatchVisit() bool
}

// ClientPurgeJob periodically sweeps expired entries out of local storage.
type ClientPurgeJob interface {
	// Start launches the background sweep at the given interval (a
	// non-positive interval defaults to 5 minutes). A running job is
	// restarted.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and waits for it to exit.
	// Safe to call when the job is not running.
	Stop()
}
