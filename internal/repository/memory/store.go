package memory

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/swapi-mock/internal/model"
	"github.com/maxviazov/swapi-mock/internal/repository"
)

// NumElements is the fixed size of every resource table.
const NumElements = 55

// Store owns both resource tables. They are built once in New and never change.
type Store struct {
	people  *table[model.Person]
	planets *table[model.Planet]
	ready   atomic.Bool
}

// New builds the people and planets tables from a single base instant.
func New(base time.Time, logger zerolog.Logger) *Store {
	start := time.Now()
	s := &Store{
		people:  newTable(BuildPeople(base, NumElements)),
		planets: newTable(BuildPlanets(base, NumElements)),
	}
	s.ready.Store(true)

	logger.Info().
		Str("component", "memory").
		Int("people", s.people.Len()).
		Int("planets", s.planets.Len()).
		Time("base", base).
		Dur("took", time.Since(start)).
		Msg("resource tables built")
	return s
}

// People exposes the people table read-only.
func (s *Store) People() repository.ResourceRepository[model.Person] { return s.people }

// Planets exposes the planets table read-only.
func (s *Store) Planets() repository.ResourceRepository[model.Planet] { return s.planets }

// Ping reports ErrNotReady until the tables are in place.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || !s.ready.Load() {
		return repository.ErrNotReady
	}
	return nil
}

var _ repository.Pinger = (*Store)(nil)
