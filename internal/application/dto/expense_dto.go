package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseInput es la entrada de creación de un gasto. Los gastos no se
// actualizan después de creados.
type ExpenseInput struct {
	Date        *time.Time      `json:"date,omitempty"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}
