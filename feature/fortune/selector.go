package fortune

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"teapot-fortune/feature/fortune/models"
)

// ErrNoContent is returned when no entry could be found within the attempt budget or deadline.
var ErrNoContent = errors.New("no content available")

// Selector picks uniformly random entries from a sparse identifier space by
// rejection sampling: draw an id in [0, MaxID), keep it if it exists, redraw otherwise.
type Selector struct {
	repo        Repository
	maxAttempts int
	intn        func(n int64) int64
}

// NewSelector creates a Selector. maxAttempts <= 0 removes the attempt bound, leaving
// only the context deadline.
func NewSelector(repo Repository, maxAttempts int) *Selector {
	return &Selector{repo: repo, maxAttempts: maxAttempts, intn: rand.Int64N}
}

// WithRand replaces the random source. intn must return a value in [0, n).
func (s *Selector) WithRand(intn func(n int64) int64) *Selector {
	s.intn = intn
	return s
}

// Select returns a random entry. MaxID is re-read on every draw so the bound tracks
// the table as it changes.
func (s *Selector) Select(ctx context.Context) (*models.Entry, error) {
	for attempt := 1; s.maxAttempts <= 0 || attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoContent, err)
		}

		maxID := s.repo.MaxID(ctx)
		if maxID <= 0 {
			continue
		}

		if entry, ok := s.repo.FetchByID(ctx, s.intn(maxID)); ok {
			return entry, nil
		}
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrNoContent, s.maxAttempts)
}
