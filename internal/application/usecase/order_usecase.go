package usecase

import (
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

// OrderUseCase upsert de pedidos y marcado de pago.
//
// Cada guardado recalcula el estado de pago y toca LastOrderedAt de los
// productos referenciados por las líneas entrantes — también al re-guardar un
// pedido sin cambios. Las dos mutaciones viajan en el mismo Replace.
type OrderUseCase struct {
	store repository.DocumentStore
	log   *logger.Logger
	now   func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(store repository.DocumentStore, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{store: store, log: log, now: time.Now}
}

// Upsert crea un pedido (ID vacío) o aplica el parche sobre uno existente.
// Devuelve además las advertencias de stock: líneas cuya cantidad excede el
// stock actual no se rechazan, solo se reportan.
func (uc *OrderUseCase) Upsert(p dto.OrderPatch) (*dto.OrderResponse, []dto.StockWarning, error) {
	doc := uc.store.Snapshot()
	now := uc.now()

	var saved *entity.Order
	if p.ID == "" {
		id, code := sequence.Next(sequence.KindOrder, len(doc.Orders))
		created := entity.Order{
			ID:             id,
			Code:           code,
			Date:           now,
			Items:          []entity.OrderItem{},
			Fees:           decimal.Zero,
			Discount:       decimal.Zero,
			AmountPaid:     decimal.Zero,
			PaymentMethods: []string{},
		}
		if p.ClientID != nil {
			created.ClientID = *p.ClientID
		}
		if p.Date != nil {
			created.Date = *p.Date
		}
		if p.Items != nil {
			created.Items = p.Items
		}
		if p.Fees != nil {
			created.Fees = *p.Fees
		}
		if p.Discount != nil {
			created.Discount = *p.Discount
		}
		if p.AmountPaid != nil {
			created.AmountPaid = *p.AmountPaid
		}
		if p.PaymentMethods != nil {
			created.PaymentMethods = p.PaymentMethods
		}
		created.Status = accounting.Status(&created)
		doc.Orders = append(doc.Orders, created)
		saved = &doc.Orders[len(doc.Orders)-1]
	} else {
		existing := doc.FindOrder(p.ID)
		if existing == nil {
			return nil, nil, domain.ErrNotFound
		}
		mergeOrder(existing, p)
		existing.Status = accounting.Status(existing)
		saved = existing
	}

	// Denormalización explícita: marcar los productos de las líneas entrantes
	touchLastOrdered(doc, p.Items, now)
	warnings := stockWarnings(doc, saved.Items)

	if err := uc.store.Replace(doc); err != nil {
		return nil, nil, err
	}
	uc.log.Debug().
		Str("id", saved.ID).
		Str("status", saved.Status).
		Int("warnings", len(warnings)).
		Msg("pedido guardado")
	return toOrderResponse(saved), warnings, nil
}

// MarkPaid iguala amountPaid al total del pedido en una sola escritura. No
// agrega ningún método de pago.
func (uc *OrderUseCase) MarkPaid(orderID string) (*dto.OrderResponse, error) {
	doc := uc.store.Snapshot()
	order := doc.FindOrder(orderID)
	if order == nil {
		return nil, domain.ErrNotFound
	}
	order.AmountPaid = accounting.Total(order)
	order.Status = entity.OrderStatusCompleted
	if err := uc.store.Replace(doc); err != nil {
		return nil, err
	}
	uc.log.Debug().Str("id", orderID).Msg("pedido marcado pagado")
	return toOrderResponse(order), nil
}

// mergeOrder aplica el parche sobre el pedido existente. El estado se
// recalcula después, nunca se toma del parche.
func mergeOrder(o *entity.Order, p dto.OrderPatch) {
	if p.ClientID != nil {
		o.ClientID = *p.ClientID
	}
	if p.Date != nil {
		o.Date = *p.Date
	}
	if p.Items != nil {
		o.Items = p.Items
	}
	if p.Fees != nil {
		o.Fees = *p.Fees
	}
	if p.Discount != nil {
		o.Discount = *p.Discount
	}
	if p.AmountPaid != nil {
		o.AmountPaid = *p.AmountPaid
	}
	if p.PaymentMethods != nil {
		o.PaymentMethods = p.PaymentMethods
	}
}

// touchLastOrdered marca LastOrderedAt de cada producto referenciado por las
// líneas entrantes. Ids desconocidos se ignoran (sin claves foráneas).
func touchLastOrdered(doc *entity.Document, items []entity.OrderItem, at time.Time) {
	for _, it := range items {
		if prod := doc.FindProduct(it.ProductID); prod != nil {
			t := at
			prod.LastOrderedAt = &t
		}
	}
}

// stockWarnings reporta las líneas del pedido guardado cuya cantidad excede el
// stock actual del producto.
func stockWarnings(doc *entity.Document, items []entity.OrderItem) []dto.StockWarning {
	var warnings []dto.StockWarning
	for _, it := range items {
		prod := doc.FindProduct(it.ProductID)
		if prod == nil {
			continue
		}
		if it.Quantity > prod.Stock {
			warnings = append(warnings, dto.StockWarning{
				ProductID:   prod.ID,
				ProductName: prod.Name,
				Requested:   it.Quantity,
				Available:   prod.Stock,
			})
		}
	}
	return warnings
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		Order:    *o,
		Subtotal: accounting.Subtotal(o),
		Total:    accounting.Total(o),
		Balance:  accounting.Balance(o),
	}
}
