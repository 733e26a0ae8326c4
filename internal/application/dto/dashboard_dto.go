package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-libro/internal/domain/entity"
)

// DashboardStats son las tarjetas del carrusel del dashboard.
type DashboardStats struct {
	InventoryValue  decimal.Decimal `json:"inventory_value"`  // Σ precio del tier por defecto × stock
	SalesToday      decimal.Decimal `json:"sales_today"`      // pedidos del día calendario actual
	OutstandingDebt decimal.Decimal `json:"outstanding_debt"` // saldo de pedidos Unpaid
	SalesThisWeek   decimal.Decimal `json:"sales_this_week"`  // ventana móvil de 7×24h
}

// ClientSummaryRow es una fila del resumen por cliente.
// Spent y Balance suman valores crudos por pedido (sin recorte en cero): un
// pedido sobrepagado puede producir un saldo agregado negativo.
type ClientSummaryRow struct {
	Client  entity.Client   `json:"client"`
	Orders  int             `json:"orders"`
	Spent   decimal.Decimal `json:"spent"`
	Balance decimal.Decimal `json:"balance"`
}

// ClientSummaryTotals son los totales al pie de la tabla de clientes.
type ClientSummaryTotals struct {
	Orders  int             `json:"orders"`
	Spent   decimal.Decimal `json:"spent"`
	Balance decimal.Decimal `json:"balance"`
}

// SearchResults agrupa las coincidencias de la búsqueda global.
type SearchResults struct {
	Clients  []entity.Client  `json:"clients"`
	Products []entity.Product `json:"products"`
	Orders   []entity.Order   `json:"orders"`
}
