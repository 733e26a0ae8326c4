package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-libro/internal/application/dto"
	"github.com/jhoicas/pos-libro/internal/domain/accounting"
	"github.com/jhoicas/pos-libro/internal/domain/entity"
	"github.com/jhoicas/pos-libro/internal/domain/repository"
)

// ReportsUseCase genera el reporte financiero sobre un rango de fechas.
type ReportsUseCase struct {
	store repository.DocumentStore
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(store repository.DocumentStore) *ReportsUseCase {
	return &ReportsUseCase{store: store}
}

// Report calcula ingresos, utilidad (COGS fijo en cero), gastos y neto, más
// los rankings por cliente y producto, los gastos por categoría y las ventas
// mensuales. El rango es inclusivo en ambos extremos; nil = sin límite. Los
// rankings quedan etiquetados por el id crudo, sin resolver el nombre.
func (uc *ReportsUseCase) Report(from, to *time.Time) dto.Report {
	doc := uc.store.Snapshot()

	var orders []*entity.Order
	for i := range doc.Orders {
		o := &doc.Orders[i]
		if from != nil && o.Date.Before(*from) {
			continue
		}
		if to != nil && o.Date.After(*to) {
			continue
		}
		orders = append(orders, o)
	}

	revenue := decimal.Zero
	byClient := make(map[string]decimal.Decimal)
	byProduct := make(map[string]decimal.Decimal)
	byMonth := make(map[string]decimal.Decimal)
	for _, o := range orders {
		total := accounting.Total(o)
		revenue = revenue.Add(total)
		byClient[o.ClientID] = mapAdd(byClient, o.ClientID, total)
		for _, it := range o.Items {
			line := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			byProduct[it.ProductID] = mapAdd(byProduct, it.ProductID, line)
		}
		month := o.Date.UTC().Format("2006-01")
		byMonth[month] = mapAdd(byMonth, month, total)
	}

	// Los gastos no se filtran por el rango: el reporte suma todos.
	expenses := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, e := range doc.Expenses {
		expenses = expenses.Add(e.Amount)
		byCategory[e.Category] = mapAdd(byCategory, e.Category, e.Amount)
	}

	cogs := decimal.Zero // costo de ventas sin implementar
	profit := revenue.Sub(cogs)

	return dto.Report{
		Revenue:            revenue,
		Profit:             profit,
		Expenses:           expenses,
		Net:                profit.Sub(expenses),
		TopClients:         rankedDesc(byClient),
		TopProducts:        rankedDesc(byProduct),
		ExpensesByCategory: rankedDesc(byCategory),
		MonthlySales:       monthlyAsc(byMonth),
	}
}

func mapAdd(m map[string]decimal.Decimal, key string, v decimal.Decimal) decimal.Decimal {
	cur, ok := m[key]
	if !ok {
		cur = decimal.Zero
	}
	return cur.Add(v)
}

// rankedDesc pasa el mapa a lista ordenada por total descendente; empates por
// clave para que el resultado sea estable.
func rankedDesc(m map[string]decimal.Decimal) []dto.RankedTotal {
	out := make([]dto.RankedTotal, 0, len(m))
	for k, v := range m {
		out = append(out, dto.RankedTotal{Key: k, Total: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// monthlyAsc ordena los buckets mensuales ascendente por clave YYYY-MM.
func monthlyAsc(m map[string]decimal.Decimal) []dto.MonthlyBucket {
	out := make([]dto.MonthlyBucket, 0, len(m))
	for k, v := range m {
		out = append(out, dto.MonthlyBucket{Month: k, Total: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
