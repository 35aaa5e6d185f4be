package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/swapi-mock/internal/model"
	"github.com/maxviazov/swapi-mock/internal/repository"
)

// resourceService binds the query pipeline to one table: no transport details here.
type resourceService[T model.Resource] struct {
	repo     repository.ResourceRepository[T]
	endpoint string
	baseURL  string
	log      zerolog.Logger
}

// NewResourceService wires a resource use case. baseURL is the absolute prefix used for next links.
func NewResourceService[T model.Resource](repo repository.ResourceRepository[T], endpoint, baseURL string, logger zerolog.Logger) ResourceService[T] {
	l := logger.With().Str("module", "service").Str("component", endpoint).Logger()
	return &resourceService[T]{repo: repo, endpoint: endpoint, baseURL: baseURL, log: l}
}

func (s *resourceService[T]) Endpoint() string { return s.endpoint }

func (s *resourceService[T]) List(ctx context.Context, q Query) (model.Envelope[T], error) {
	start := time.Now()
	records, err := s.repo.All(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("load table failed")
		return model.Envelope[T]{}, err
	}

	env := Apply(s.baseURL, s.endpoint, records, q)

	ev := s.log.Debug().
		Int("page", q.Page).
		Int("count", env.Count).
		Int("returned", len(env.Results)).
		Bool("has_next", env.Next != nil).
		Dur("took", time.Since(start))
	if q.Search != nil {
		ev = ev.Str("search", *q.Search)
	}
	ev.Msg("list served")
	return env, nil
}

func (s *resourceService[T]) Get(ctx context.Context, index int) (T, error) {
	var zero T
	if err := validateIndex(index); err != nil {
		return zero, err
	}
	rec, err := s.repo.GetByIndex(ctx, index)
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Debug().Err(err).Int("index", index).Msg("get failed")
		return zero, err
	}
	return rec, nil
}
