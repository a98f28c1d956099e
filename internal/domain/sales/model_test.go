package sales_test

import (
	"testing"

	"datao/internal/domain/sales"
)

// TestSale_Validate tests validation of Sale.
func TestSale_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sale    sales.Sale
		wantErr bool
	}{
		{
			name:    "valid sale",
			sale:    sales.Sale{Category: sales.CategorySnacks, Month: "Enero", MonthNum: 1, SaleAmount: 120, ProfitMargin: 38, TicketSize: 90},
			wantErr: false,
		},
		{
			name:    "unknown category",
			sale:    sales.Sale{Category: "Juguetes", Month: "Enero", MonthNum: 1, SaleAmount: 120},
			wantErr: true,
		},
		{
			name:    "month out of range",
			sale:    sales.Sale{Category: sales.CategoryPremium, Month: "Enero", MonthNum: 13, SaleAmount: 120},
			wantErr: true,
		},
		{
			name:    "month label mismatch",
			sale:    sales.Sale{Category: sales.CategoryPremium, Month: "Enero", MonthNum: 2, SaleAmount: 120},
			wantErr: true,
		},
		{
			name:    "zero amount",
			sale:    sales.Sale{Category: sales.CategoryBebidas, Month: "Marzo", MonthNum: 3, SaleAmount: 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sale.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Sale.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestCatalogMarginsAligned verifies every category has products and margin bands.
func TestCatalogMarginsAligned(t *testing.T) {
	for _, cat := range sales.Categories {
		if len(sales.Catalog[cat]) == 0 {
			t.Errorf("category %q has no products", cat)
		}
		if len(sales.ProfitMargins[cat]) == 0 {
			t.Errorf("category %q has no margin bands", cat)
		}
	}
}
