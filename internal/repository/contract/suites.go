package contract

import (
	"context"
	"errors"
	"testing"

	"github.com/maxviazov/swapi-mock/internal/model"
	"github.com/maxviazov/swapi-mock/internal/repository"
)

// ResourceFactory builds a repository holding exactly wantLen records.
type ResourceFactory[T model.Resource] func(t *testing.T) (repo repository.ResourceRepository[T], wantLen int)

type PingerFactory func(t *testing.T) (repository.Pinger, func())

// RunResourceRepositoryContract checks ordering, bounds and isolation guarantees
// that any read-only resource table has to honor.
func RunResourceRepositoryContract[T model.Resource](t *testing.T, makeRepo ResourceFactory[T]) {
	t.Helper()

	t.Run("all_len_matches", func(t *testing.T) {
		repo, want := makeRepo(t)
		all, err := repo.All(context.Background())
		if err != nil {
			t.Fatalf("all failed: %v", err)
		}
		if len(all) != want || repo.Len() != want {
			t.Fatalf("unexpected length: all=%d len=%d want=%d", len(all), repo.Len(), want)
		}
	})

	t.Run("get_matches_all_order", func(t *testing.T) {
		repo, _ := makeRepo(t)
		ctx := context.Background()
		all, err := repo.All(ctx)
		if err != nil {
			t.Fatalf("all failed: %v", err)
		}
		for i, want := range all {
			got, err := repo.GetByIndex(ctx, i)
			if err != nil {
				t.Fatalf("get %d failed: %v", i, err)
			}
			if got.GetName() != want.GetName() {
				t.Fatalf("index %d mismatch: got %q want %q", i, got.GetName(), want.GetName())
			}
		}
	})

	t.Run("get_out_of_range", func(t *testing.T) {
		repo, want := makeRepo(t)
		for _, idx := range []int{-1, want, want + 100} {
			if _, err := repo.GetByIndex(context.Background(), idx); !errors.Is(err, repository.ErrNotFound) {
				t.Fatalf("index %d: expected ErrNotFound, got %v", idx, err)
			}
		}
	})

	t.Run("all_returns_copy", func(t *testing.T) {
		repo, want := makeRepo(t)
		if want == 0 {
			t.Skip("empty table")
		}
		ctx := context.Background()
		first, _ := repo.All(ctx)
		before := first[0].GetName()
		var zero T
		first[0] = zero
		second, _ := repo.All(ctx)
		if second[0].GetName() != before {
			t.Fatalf("table mutated through All: got %q want %q", second[0].GetName(), before)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
	t.Run("ping_cancelled", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := p.Ping(ctx); err == nil {
			t.Fatalf("expected error on cancelled context")
		}
	})
}
