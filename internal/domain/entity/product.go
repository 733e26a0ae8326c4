package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingTier es un precio con nombre para un producto.
// El índice 0 del arreglo Pricing es el tier por defecto.
type PricingTier struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Product representa un producto del inventario.
// Stock nunca es negativo (los ajustes se recortan en 0). LastOrderedAt se
// actualiza como efecto de cada guardado de pedido que referencia el producto.
type Product struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Stock         int             `json:"stock"`
	Pricing       []PricingTier   `json:"pricing"`
	Cost          decimal.Decimal `json:"cost"`
	LastOrderedAt *time.Time      `json:"lastOrderedAt,omitempty"`
}

// DefaultPrice devuelve el precio del tier por defecto (índice 0).
func (p *Product) DefaultPrice() decimal.Decimal {
	if len(p.Pricing) == 0 {
		return decimal.Zero
	}
	return p.Pricing[0].Price
}
