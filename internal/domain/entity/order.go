package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de un pedido. Status es siempre derivado de
// (items, fees, discount, amountPaid); nunca se asigna de forma independiente.
const (
	OrderStatusUnpaid    = "Unpaid"
	OrderStatusCompleted = "Completed"
)

// Métodos de pago aceptados.
const (
	PaymentMethodCash      = "Cash"
	PaymentMethodETransfer = "E-Transfer"
)

// OrderItem es una línea de pedido. Price es una captura del precio al momento
// de guardar: cambiar después el tier del producto no altera pedidos pasados.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Tier      string          `json:"tier,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Order representa un pedido de un cliente. ClientID es una referencia sin
// verificación de integridad (no hay claves foráneas en el documento).
type Order struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	ClientID       string          `json:"clientId"`
	Date           time.Time       `json:"date"`
	Items          []OrderItem     `json:"items"`
	Fees           decimal.Decimal `json:"fees"`
	Discount       decimal.Decimal `json:"discount"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	PaymentMethods []string        `json:"paymentMethods"`
	Status         string          `json:"status"`
}
