package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the catalog rejects a request for a
	// missing or expired session.
	ErrUnauthorized = errors.New("catalog session unauthorized")

	// ErrBatchTooLarge is returned when a batch request exceeds
	// [MaxBatchSize] ids.
	ErrBatchTooLarge = errors.New("batch exceeds catalog limit")
)
