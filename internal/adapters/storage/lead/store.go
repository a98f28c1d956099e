package lead

import (
	"context"

	domain "datao/internal/domain/lead"
)

// Store persists Lead state.
type Store interface {
	Save(ctx context.Context, l domain.Lead) error
	GetByID(ctx context.Context, id string) (domain.Lead, error)
	List(ctx context.Context) ([]domain.Lead, error)
}
