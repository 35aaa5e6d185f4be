// Package memory holds the in-process resource tables generated at startup.
package memory

import (
	"context"
	"slices"

	"github.com/maxviazov/swapi-mock/internal/model"
	"github.com/maxviazov/swapi-mock/internal/repository"
)

// table is an immutable, index-ordered slice of records.
// Reads hand out copies so the backing array is never shared.
type table[T model.Resource] struct {
	rows []T
}

func newTable[T model.Resource](rows []T) *table[T] {
	return &table[T]{rows: slices.Clone(rows)}
}

func (t *table[T]) All(_ context.Context) ([]T, error) {
	return slices.Clone(t.rows), nil
}

func (t *table[T]) GetByIndex(_ context.Context, index int) (T, error) {
	var zero T
	if index < 0 || index >= len(t.rows) {
		return zero, repository.ErrNotFound
	}
	return t.rows[index], nil
}

func (t *table[T]) Len() int { return len(t.rows) }

var (
	_ repository.ResourceRepository[model.Person] = (*table[model.Person])(nil)
	_ repository.ResourceRepository[model.Planet] = (*table[model.Planet])(nil)
)
