// Package accounting contiene la aritmética pura de un pedido: subtotal,
// total, saldo y estado de pago. Se recalcula en cada lectura y escritura;
// nunca se almacena un estado inconsistente con sus entradas.
package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-libro/internal/domain/entity"
)

// Subtotal es la suma de cantidad × precio de cada línea.
func Subtotal(o *entity.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// RawTotal es subtotal + fees - discount SIN recortar en cero. Los rollups por
// cliente suman este valor crudo; el total mostrado por pedido usa Total.
func RawTotal(o *entity.Order) decimal.Decimal {
	return Subtotal(o).Add(o.Fees).Sub(o.Discount)
}

// Total es max(0, subtotal + fees - discount).
func Total(o *entity.Order) decimal.Decimal {
	t := RawTotal(o)
	if t.IsNegative() {
		return decimal.Zero
	}
	return t
}

// Balance es max(0, total - amountPaid).
func Balance(o *entity.Order) decimal.Decimal {
	b := Total(o).Sub(o.AmountPaid)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}

// Status deriva el estado de pago: Completed si amountPaid cubre el total.
func Status(o *entity.Order) string {
	if o.AmountPaid.GreaterThanOrEqual(Total(o)) {
		return entity.OrderStatusCompleted
	}
	return entity.OrderStatusUnpaid
}

// ClampStock aplica un ajuste delta con piso en cero.
func ClampStock(current, delta int) int {
	n := current + delta
	if n < 0 {
		return 0
	}
	return n
}
