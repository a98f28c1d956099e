package sales

import (
	"errors"
	"strings"
)

// Category names as they appear in the Ecotienda catalog (Spanish, matching
// the client's own product taxonomy).
const (
	CategorySnacks   = "Snacks Saludables"
	CategoryBebidas  = "Bebidas Naturales"
	CategoryOrganico = "Productos Orgánicos"
	CategoryLimpieza = "Productos Eco-Limpieza"
	CategoryPremium  = "Productos Premium"
)

// Categories lists the catalog categories in canonical order.
var Categories = []string{CategorySnacks, CategoryBebidas, CategoryOrganico, CategoryLimpieza, CategoryPremium}

// Product is one catalog entry with its list price in MXN.
type Product struct {
	Name  string
	Price float64
}

// Catalog maps each category to its product list.
var Catalog = map[string][]Product{
	CategorySnacks: {
		{Name: "Chips de Kale", Price: 45},
		{Name: "Nueces Mixtas Premium", Price: 85},
		{Name: "Barritas de Granola", Price: 35},
		{Name: "Almendras Naturales", Price: 95},
		{Name: "Frutos Secos Mix", Price: 75},
		{Name: "Galletas de Avena", Price: 40},
		{Name: "Trail Mix Orgánico", Price: 65},
	},
	CategoryBebidas: {
		{Name: "Kombucha Natural", Price: 55},
		{Name: "Jugo Verde Detox", Price: 48},
		{Name: "Agua de Coco", Price: 42},
		{Name: "Té Matcha Orgánico", Price: 120},
		{Name: "Smoothie de Frutas", Price: 52},
		{Name: "Leche de Almendras", Price: 58},
	},
	CategoryOrganico: {
		{Name: "Miel Orgánica 500g", Price: 180},
		{Name: "Quinoa Blanca 1kg", Price: 95},
		{Name: "Aceite de Coco", Price: 150},
		{Name: "Pasta Integral", Price: 48},
		{Name: "Café Orgánico", Price: 135},
		{Name: "Arroz Integral", Price: 55},
	},
	CategoryLimpieza: {
		{Name: "Detergente Biodegradable", Price: 85},
		{Name: "Jabón Líquido Natural", Price: 68},
		{Name: "Limpiador Multiusos Eco", Price: 72},
		{Name: "Esponjas Biodegradables", Price: 35},
		{Name: "Shampoo Sólido", Price: 95},
	},
	CategoryPremium: {
		{Name: "Aceite de Oliva Extra Virgen", Price: 285},
		{Name: "Superfoods Mix", Price: 320},
		{Name: "Proteína Vegana Premium", Price: 450},
		{Name: "Spirulina Orgánica", Price: 380},
		{Name: "Colágeno Vegetal", Price: 420},
	},
}

// ProfitMargins holds the observed margin bands per category (fractions).
var ProfitMargins = map[string][]float64{
	CategorySnacks:   {0.35, 0.40, 0.38, 0.42},
	CategoryBebidas:  {0.32, 0.36, 0.34, 0.38},
	CategoryOrganico: {0.28, 0.32, 0.30, 0.35},
	CategoryLimpieza: {0.30, 0.35, 0.33, 0.37},
	CategoryPremium:  {0.42, 0.48, 0.45, 0.50},
}

// MonthNames lists Spanish month names, indexed by month number - 1.
var MonthNames = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthShortNames lists the three-letter chart labels for each month.
var MonthShortNames = []string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// DisplayName strips the "Productos " prefix some categories carry so chart
// labels stay short.
func DisplayName(category string) string {
	return strings.TrimPrefix(category, "Productos ")
}

// Domain errors.
var (
	ErrUnknownCategory = errors.New("category is not in the catalog")
	ErrInvalidMonth    = errors.New("month number must be between 1 and 12")
	ErrInvalidAmount   = errors.New("sale amount must be greater than zero")
)

// Sale is one synthetic sale row for the mock report.
type Sale struct {
	Category     string  `json:"category"`
	Month        string  `json:"month"`    // Spanish month name
	MonthNum     int     `json:"monthNum"` // 1..12
	SaleAmount   float64 `json:"saleAmount"`
	ProfitMargin float64 `json:"profitMargin"` // percentage, e.g. 38.0
	TicketSize   float64 `json:"ticketSize"`
}

// Validate checks the sale row invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (s *Sale) Validate() error {
	if _, ok := Catalog[s.Category]; !ok {
		return ErrUnknownCategory
	}
	if s.MonthNum < 1 || s.MonthNum > 12 {
		return ErrInvalidMonth
	}
	if s.Month != MonthNames[s.MonthNum-1] {
		return ErrInvalidMonth
	}
	if s.SaleAmount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
