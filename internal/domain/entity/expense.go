package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategoryInventory es la categoría de los gastos creados
// automáticamente por un ajuste de stock con costo de compra.
const ExpenseCategoryInventory = "Inventory"

// Expense representa un gasto del negocio. Es inmutable después de creado:
// no existe operación de actualización para gastos.
type Expense struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}
