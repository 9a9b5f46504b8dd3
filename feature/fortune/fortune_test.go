package fortune_test

import (
	"context"
	"sync/atomic"

	"teapot-fortune/feature/fortune/models"
)

// memRepository is an in-memory Repository over a fixed set of entries.
type memRepository struct {
	entries map[int64]string
	maxID   int64

	maxCalls   atomic.Int64
	fetchCalls atomic.Int64
}

func newMemRepository(maxID int64, entries map[int64]string) *memRepository {
	return &memRepository{entries: entries, maxID: maxID}
}

func (r *memRepository) MaxID(ctx context.Context) int64 {
	r.maxCalls.Add(1)
	return r.maxID
}

func (r *memRepository) FetchByID(ctx context.Context, id int64) (*models.Entry, bool) {
	r.fetchCalls.Add(1)
	body, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return &models.Entry{ID: id, Body: body}, true
}

var sparseEntries = map[int64]string{
	1: "one",
	5: "five",
	9: "nine",
}
