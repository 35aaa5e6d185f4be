package repository

import (
	"context"

	"github.com/maxviazov/swapi-mock/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ResourceRepository exposes one read-only resource table in seed-index order.
// Implementations must never let callers mutate the shared table.
type ResourceRepository[T model.Resource] interface {
	// All returns every record, ordered by seed index.
	All(ctx context.Context) ([]T, error)
	// GetByIndex returns the record generated at the given seed index or ErrNotFound.
	GetByIndex(ctx context.Context, index int) (T, error)
	// Len reports the number of records in the table.
	Len() int
}
