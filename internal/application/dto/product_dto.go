package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-libro/internal/domain/entity"
)

// ProductPatch es la entrada del upsert de productos.
// Pricing nil (o vacío) significa sin cambio: la lista de tiers nunca queda
// vacía. Price solo aplica en creación sin Pricing: define el tier Default.
type ProductPatch struct {
	ID      string               `json:"id,omitempty"`
	Name    *string              `json:"name,omitempty"`
	Stock   *int                 `json:"stock,omitempty"`
	Pricing []entity.PricingTier `json:"pricing,omitempty"`
	Cost    *decimal.Decimal     `json:"cost,omitempty"`
	Price   *decimal.Decimal     `json:"price,omitempty"`
}

// StockAdjustment es un ajuste delta de inventario sobre un producto.
// Con Delta positivo, Cost positivo y CreateExpense activo se crea además un
// gasto de categoría Inventory en la misma escritura.
type StockAdjustment struct {
	ProductID     string          `json:"product_id"`
	Delta         int             `json:"delta"`
	Cost          decimal.Decimal `json:"cost"`
	CreateExpense bool            `json:"create_expense"`
}
