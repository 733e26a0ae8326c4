package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-libro/internal/application/dto"
	"github.com/jhoicas/pos-libro/internal/domain"
	"github.com/jhoicas/pos-libro/internal/domain/accounting"
	"github.com/jhoicas/pos-libro/internal/domain/entity"
	"github.com/jhoicas/pos-libro/internal/domain/repository"
	"github.com/jhoicas/pos-libro/internal/domain/sequence"
	"github.com/jhoicas/pos-libro/pkg/logger"
)

const defaultProductName = "New Product"

// ProductUseCase upsert de productos y ajustes de inventario.
type ProductUseCase struct {
	store repository.DocumentStore
	log   *logger.Logger
	now   func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store repository.DocumentStore, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{store: store, log: log, now: time.Now}
}

// Upsert crea un producto (ID vacío) o aplica el parche sobre uno existente.
// En creación sin Pricing se arma un único tier Default con Price (o cero).
func (uc *ProductUseCase) Upsert(p dto.ProductPatch) (*entity.Product, error) {
	doc := uc.store.Snapshot()

	if p.ID == "" {
		id, code := sequence.Next(sequence.KindProduct, len(doc.Products))
		created := entity.Product{
			ID:      id,
			Code:    code,
			Name:    defaultProductName,
			Pricing: p.Pricing,
			Cost:    decimal.Zero,
		}
		if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
			created.Name = strings.TrimSpace(*p.Name)
		}
		if p.Stock != nil {
			created.Stock = *p.Stock
		}
		if len(created.Pricing) == 0 {
			price := decimal.Zero
			if p.Price != nil {
				price = *p.Price
			}
			created.Pricing = []entity.PricingTier{{Name: "Default", Price: price}}
		}
		if p.Cost != nil {
			created.Cost = *p.Cost
		}
		doc.Products = append(doc.Products, created)
		if err := uc.store.Replace(doc); err != nil {
			return nil, err
		}
		uc.log.Debug().Str("id", id).Str("code", code).Msg("producto creado")
		return &created, nil
	}

	existing := doc.FindProduct(p.ID)
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	mergeProduct(existing, p)
	if err := uc.store.Replace(doc); err != nil {
		return nil, err
	}
	updated := *existing
	return &updated, nil
}

// AdjustStock aplica un delta con piso en cero. Con delta positivo, costo
// positivo y la bandera activa, crea además el gasto de Inventory en el mismo
// reemplazo del documento (las dos escrituras son una sola transacción).
func (uc *ProductUseCase) AdjustStock(req dto.StockAdjustment) (*entity.Product, *entity.Expense, error) {
	doc := uc.store.Snapshot()

	product := doc.FindProduct(req.ProductID)
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}
	product.Stock = accounting.ClampStock(product.Stock, req.Delta)

	var expense *entity.Expense
	if req.CreateExpense && req.Delta > 0 && req.Cost.IsPositive() {
		id, code := sequence.Next(sequence.KindExpense, len(doc.Expenses))
		e := entity.Expense{
			ID:          id,
			Code:        code,
			Date:        uc.now(),
			Category:    entity.ExpenseCategoryInventory,
			Description: "Stock for " + product.Name,
			Amount:      req.Cost,
		}
		doc.Expenses = append(doc.Expenses, e)
		expense = &e
	}

	if err := uc.store.Replace(doc); err != nil {
		return nil, nil, err
	}
	uc.log.Debug().
		Str("product", product.ID).
		Int("delta", req.Delta).
		Int("stock", product.Stock).
		Bool("expense", expense != nil).
		Msg("stock ajustado")
	updated := *product
	return &updated, expense, nil
}

// mergeProduct aplica el parche sobre el registro existente. Un Pricing vacío
// no reemplaza: la lista de tiers nunca queda vacía.
func mergeProduct(prod *entity.Product, p dto.ProductPatch) {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.Stock != nil {
		prod.Stock = *p.Stock
	}
	if len(p.Pricing) > 0 {
		prod.Pricing = p.Pricing
	}
	if p.Cost != nil {
		prod.Cost = *p.Cost
	}
}
