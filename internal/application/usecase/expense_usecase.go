package usecase

import (
	"time"

	"github.com/jhoicas/pos-libro/internal/application/dto"
	"github.com/jhoicas/pos-libro/internal/domain/entity"
	"github.com/jhoicas/pos-libro/internal/domain/repository"
	"github.com/jhoicas/pos-libro/internal/domain/sequence"
	"github.com/jhoicas/pos-libro/pkg/logger"
)

const defaultExpenseCategory = "General"

// ExpenseUseCase alta de gastos. Los gastos son de solo creación: no existe
// operación de actualización.
type ExpenseUseCase struct {
	store repository.DocumentStore
	log   *logger.Logger
	now   func() time.Time
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(store repository.DocumentStore, log *logger.Logger) *ExpenseUseCase {
	return &ExpenseUseCase{store: store, log: log, now: time.Now}
}

// Add crea un gasto con defaults: fecha actual, categoría General, monto cero.
func (uc *ExpenseUseCase) Add(in dto.ExpenseInput) (*entity.Expense, error) {
	doc := uc.store.Snapshot()

	id, code := sequence.Next(sequence.KindExpense, len(doc.Expenses))
	created := entity.Expense{
		ID:          id,
		Code:        code,
		Date:        uc.now(),
		Category:    defaultExpenseCategory,
		Description: in.Description,
		Amount:      in.Amount,
	}
	if in.Date != nil {
		created.Date = *in.Date
	}
	if in.Category != "" {
		created.Category = in.Category
	}
	doc.Expenses = append(doc.Expenses, created)
	if err := uc.store.Replace(doc); err != nil {
		return nil, err
	}
	uc.log.Debug().Str("id", id).Str("category", created.Category).Msg("gasto creado")
	return &created, nil
}
