package orchestrators

import (
	"log/slog"
	"math/rand"

	"datao/internal/application/synthetic"
	"datao/internal/domain/booking"
	"datao/internal/domain/sales"
)

// DefaultSeasonCount is the booking dataset size backing the padel demo.
const DefaultSeasonCount = 1000

// SeedDemoInput carries input for the demo dataset seeding orchestrator.
type SeedDemoInput struct {
	Seed        int64 // 0 = ambient randomness, demo differs run to run
	SeasonCount int   // 0 = DefaultSeasonCount
	SalesCount  int   // 0 = synthetic.DefaultSalesCount
}

// SeedDemoResult carries both generated datasets.
type SeedDemoResult struct {
	Bookings []booking.Record
	Sales    []sales.Sale
}

// ExecuteSeedDemo generates the in-memory datasets backing the demo
// dashboards. With a non-zero seed the output is fully reproducible.
// PRE: none
// POST: result holds SeasonCount booking records and SalesCount sale rows
func ExecuteSeedDemo(input SeedDemoInput) SeedDemoResult {
	if input.SeasonCount == 0 {
		input.SeasonCount = DefaultSeasonCount
	}
	if input.SalesCount == 0 {
		input.SalesCount = synthetic.DefaultSalesCount
	}

	var bookingRng, salesRng *rand.Rand
	if input.Seed != 0 {
		bookingRng = rand.New(rand.NewSource(input.Seed))
		salesRng = rand.New(rand.NewSource(input.Seed + 1))
	}

	result := SeedDemoResult{
		Bookings: synthetic.GenerateBookings(input.SeasonCount, synthetic.BookingsDeps{Rand: bookingRng}),
		Sales:    synthetic.GenerateSales(input.SalesCount, salesRng),
	}

	slog.Info("seed_event", "event", "demo_seeded",
		"seeded", input.Seed != 0,
		"bookings", len(result.Bookings),
		"sales", len(result.Sales),
	)
	return result
}
