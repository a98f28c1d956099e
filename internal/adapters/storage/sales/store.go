package sales

import (
	"context"

	"datao/internal/domain/sales"
)

// Store provides read access to the generated mock sales rows.
type Store interface {
	List(ctx context.Context) ([]sales.Sale, error)
}
