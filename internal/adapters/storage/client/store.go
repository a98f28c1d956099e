package client

import (
	"context"

	domain "datao/internal/domain/client"
)

// Store provides read access to the portal client directory.
type Store interface {
	List(ctx context.Context) ([]domain.Client, error)
}
