package season

import (
	"context"

	"datao/internal/domain/booking"
)

// Store provides read access to the generated booking season.
type Store interface {
	List(ctx context.Context) ([]booking.Record, error)
}
