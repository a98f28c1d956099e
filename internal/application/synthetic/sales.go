package synthetic

import (
	"math/rand"
	"time"

	"datao/internal/domain/sales"
)

// DefaultSalesCount is the number of rows in the mock sales report.
const DefaultSalesCount = 100

// GenerateSales fabricates a year of Ecotienda sale rows. Months are drawn
// uniformly with a 30% re-roll into August-October, skewing volume towards
// the back-to-school quarter.
// PRE: count > 0
// POST: returns count rows, each satisfying Sale.Validate
func GenerateSales(count int, rng *rand.Rand) []sales.Sale {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	rows := make([]sales.Sale, 0, count)
	for i := 0; i < count; i++ {
		category := sales.Categories[rng.Intn(len(sales.Categories))]
		products := sales.Catalog[category]
		product := products[rng.Intn(len(products))]

		month := rng.Intn(12) + 1
		if rng.Float64() > 0.7 {
			month = 8 + rng.Intn(3)
		}

		units := rng.Intn(5) + 1
		unitPrice := product.Price + (rng.Float64()*10 - 5)
		margins := sales.ProfitMargins[category]
		margin := margins[rng.Intn(len(margins))]

		rows = append(rows, sales.Sale{
			Category:     category,
			Month:        sales.MonthNames[month-1],
			MonthNum:     month,
			SaleAmount:   float64(units) * unitPrice,
			ProfitMargin: margin * 100,
			TicketSize:   float64(rng.Intn(150) + 50),
		})
	}
	return rows
}
