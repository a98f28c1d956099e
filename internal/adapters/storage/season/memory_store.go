package season

import (
	"context"

	"datao/internal/domain/booking"
)

// memoryStore holds the season in memory. The record set is generated once
// at startup and never mutated afterwards, so reads need no locking.
type memoryStore struct {
	records []booking.Record
}

// NewMemoryStore returns a Store over a fixed record set. The slice is
// copied so later mutation by the caller cannot leak into the store.
func NewMemoryStore(records []booking.Record) Store {
	cp := make([]booking.Record, len(records))
	copy(cp, records)
	return &memoryStore{records: cp}
}

// List returns the full season in generation order.
// PRE: none
// POST: returns a copy; callers may reorder freely
func (s *memoryStore) List(_ context.Context) ([]booking.Record, error) {
	out := make([]booking.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}
