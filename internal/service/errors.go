package service

import "errors"

var (
	// ErrNoLikedDogs is returned by RequestMatch when the liked set is
	// empty; no network call is issued in that case.
	ErrNoLikedDogs = errors.New("no liked dogs to match")

	// ErrStaleResponse marks a catalog response that arrived after a newer
	// search generation was opened. Callers discard the result instead of
	// rendering it.
	ErrStaleResponse = errors.New("stale search response")

	// ErrMatchNotFound is returned when the catalog names a match id that
	// cannot be resolved to a dog record.
	ErrMatchNotFound = errors.New("matched dog not found")
)
