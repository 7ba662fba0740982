// Package store provides the client's durable key-value storage with
// per-entry expiration.
//
// The store mirrors the behaviour of a browser's local storage extended with
// a time-to-live: every entry records an expiry timestamp, a read past that
// timestamp deletes the entry and reports it absent, and corrupted entries
// are silently dropped rather than surfaced. The only production
// implementation persists to a single JSON file next to the binary; an
// in-memory mode exists for tests.
package store

import "time"

//go:generate mockgen -source=interfaces.go -destination=../mock/local_storage_mock.go -package=mock

// Storage keys for the client's durable state.
const (
	// IsLoggedInKey marks an active catalog session.
	IsLoggedInKey = "isLoggedIn"

	// LikedDogsKey holds the persisted liked-dog id list.
	LikedDogsKey = "likedDogs"

	// MatchPageVisitedKey is the one-time flag suppressing the match-screen
	// celebration after the first visit.
	MatchPageVisitedKey = "hasVisitedMatchPage"
)

// DefaultTTL is the expiration applied to entries written without an
// explicit time-to-live.
const DefaultTTL = time.Hour

// LocalStorage is a key-value store with per-entry expiration.
// There is a single logical writer (the running client), so implementations
// only need to be safe for concurrent use within one process.
type LocalStorage interface {
	// Set stores value under key with the given time-to-live. A non-positive
	// ttl falls back to [DefaultTTL]. The value must be JSON-serialisable.
	Set(key string, value any, ttl time.Duration) error

	// Get reads the entry under key into dst. It returns false when the key
	// is absent, expired, or its stored value cannot be decoded into dst;
	// expired and corrupted entries are removed as a side effect.
	Get(key string, dst any) (bool, error)

	// Remove deletes the entry under key. Removing an absent key is not an
	// error.
	Remove(key string) error

	// PurgeExpired removes every expired entry and returns the number of
	// entries dropped.
	PurgeExpired() (int, error)
}
