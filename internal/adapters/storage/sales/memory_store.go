package sales

import (
	"context"

	domain "datao/internal/domain/sales"
)

// memoryStore holds the mock sales rows in memory, read-only after startup.
type memoryStore struct {
	rows []domain.Sale
}

// NewMemoryStore returns a Store over a fixed row set.
func NewMemoryStore(rows []domain.Sale) Store {
	cp := make([]domain.Sale, len(rows))
	copy(cp, rows)
	return &memoryStore{rows: cp}
}

// List returns all rows in generation order.
func (s *memoryStore) List(_ context.Context) ([]domain.Sale, error) {
	out := make([]domain.Sale, len(s.rows))
	copy(out, s.rows)
	return out, nil
}
