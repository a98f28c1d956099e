package client

import (
	"context"
	"fmt"

	domain "datao/internal/domain/client"
)

// memoryStore holds the client directory in memory. The directory is fixed
// at startup, so reads need no locking.
type memoryStore struct {
	clients []domain.Client
}

// NewMemoryStore returns a Store over a fixed client directory.
func NewMemoryStore(clients []domain.Client) Store {
	cp := make([]domain.Client, len(clients))
	copy(cp, clients)
	return &memoryStore{clients: cp}
}

// List returns the full directory.
func (s *memoryStore) List(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, len(s.clients))
	copy(out, s.clients)
	return out, nil
}

// DemoEntry pairs a client with the access code it should answer to.
type DemoEntry struct {
	ID        string
	Name      string
	Dashboard string
	Code      string
}

// DemoDirectory is the canned client list served by the demo portal.
var DemoDirectory = []DemoEntry{
	{ID: "client-padel", Name: "Padel Pro Premium", Dashboard: domain.DashboardPadel, Code: "PADEL2026"},
	{ID: "client-eco", Name: "Ecotienda Verde", Dashboard: domain.DashboardSales, Code: "ECO2026"},
}

// NewDemoStore builds the demo directory, hashing each access code.
// PRE: none
// POST: returns a Store holding every DemoDirectory entry
func NewDemoStore() (Store, error) {
	clients := make([]domain.Client, 0, len(DemoDirectory))
	for _, e := range DemoDirectory {
		c := domain.Client{ID: e.ID, Name: e.Name, Dashboard: e.Dashboard}
		if err := c.SetAccessCode(e.Code); err != nil {
			return nil, fmt.Errorf("demo directory %s: %w", e.ID, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("demo directory %s: %w", e.ID, err)
		}
		clients = append(clients, c)
	}
	return NewMemoryStore(clients), nil
}
