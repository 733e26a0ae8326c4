package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-libro/internal/domain/entity"
)

// OrderPatch es la entrada del upsert de pedidos. Los slices nil significan
// sin cambio; un slice vacío no-nil sí reemplaza (un pedido puede quedar sin
// líneas).
type OrderPatch struct {
	ID             string             `json:"id,omitempty"`
	ClientID       *string            `json:"client_id,omitempty"`
	Date           *time.Time         `json:"date,omitempty"`
	Items          []entity.OrderItem `json:"items,omitempty"`
	Fees           *decimal.Decimal   `json:"fees,omitempty"`
	Discount       *decimal.Decimal   `json:"discount,omitempty"`
	AmountPaid     *decimal.Decimal   `json:"amount_paid,omitempty"`
	PaymentMethods []string           `json:"payment_methods,omitempty"`
}

// OrderResponse devuelve el pedido guardado junto con sus montos derivados.
type OrderResponse struct {
	Order    entity.Order    `json:"order"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`
	Balance  decimal.Decimal `json:"balance"`
}

// StockWarning señala una línea cuya cantidad excede el stock actual del
// producto. Es una advertencia blanda: nunca bloquea el guardado.
type StockWarning struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
}
