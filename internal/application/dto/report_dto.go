package dto

import "github.com/shopspring/decimal"

// RankedTotal es un total agrupado por una clave: id crudo de cliente o
// producto en los rankings, nombre de categoría en los gastos.
type RankedTotal struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyBucket es el total de ventas de un mes (clave YYYY-MM, UTC).
type MonthlyBucket struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// Report es el reporte financiero sobre un rango de fechas inclusivo.
// Los gastos no se filtran por el rango: el reporte los suma completos.
type Report struct {
	Revenue            decimal.Decimal `json:"revenue"`
	Profit             decimal.Decimal `json:"profit"` // revenue - COGS; COGS fijo en cero
	Expenses           decimal.Decimal `json:"expenses"`
	Net                decimal.Decimal `json:"net"`
	TopClients         []RankedTotal   `json:"top_clients"`
	TopProducts        []RankedTotal   `json:"top_products"`
	ExpensesByCategory []RankedTotal   `json:"expenses_by_category"`
	MonthlySales       []MonthlyBucket `json:"monthly_sales"`
}
