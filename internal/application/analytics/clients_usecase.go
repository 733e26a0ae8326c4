package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-libro/internal/application/dto"
	"github.com/jhoicas/pos-libro/internal/domain/accounting"
	"github.com/jhoicas/pos-libro/internal/domain/repository"
)

// Columnas ordenables del resumen por cliente.
type SortColumn string

const (
	SortByCode    SortColumn = "code"
	SortByName    SortColumn = "name"
	SortByOrders  SortColumn = "orders"
	SortBySpent   SortColumn = "spent"
	SortByBalance SortColumn = "balance"
)

// SortDir dirección de ordenamiento.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// ClientSummaryUseCase arma el resumen por cliente: número de pedidos, gasto
// acumulado y saldo.
//
// Spent y Balance suman los valores crudos por pedido (subtotal+fees-discount
// sin recorte, y total crudo - amountPaid): un pedido sobrepagado aporta un
// delta negativo al agregado aunque su saldo mostrado individualmente se
// recorte en cero.
type ClientSummaryUseCase struct {
	store repository.DocumentStore
}

// NewClientSummaryUseCase construye el caso de uso.
func NewClientSummaryUseCase(store repository.DocumentStore) *ClientSummaryUseCase {
	return &ClientSummaryUseCase{store: store}
}

// Summaries devuelve una fila por cliente, ordenada por la columna pedida.
// Clientes sin pedidos aparecen con ceros.
func (uc *ClientSummaryUseCase) Summaries(col SortColumn, dir SortDir) []dto.ClientSummaryRow {
	doc := uc.store.Snapshot()

	type agg struct {
		count   int
		spent   decimal.Decimal
		balance decimal.Decimal
	}
	byClient := make(map[string]*agg)
	for i := range doc.Orders {
		o := &doc.Orders[i]
		raw := accounting.RawTotal(o)
		a := byClient[o.ClientID]
		if a == nil {
			a = &agg{spent: decimal.Zero, balance: decimal.Zero}
			byClient[o.ClientID] = a
		}
		a.count++
		a.spent = a.spent.Add(raw)
		a.balance = a.balance.Add(raw.Sub(o.AmountPaid))
	}

	rows := make([]dto.ClientSummaryRow, 0, len(doc.Clients))
	for _, c := range doc.Clients {
		row := dto.ClientSummaryRow{
			Client:  c,
			Spent:   decimal.Zero,
			Balance: decimal.Zero,
		}
		if a := byClient[c.ID]; a != nil {
			row.Orders = a.count
			row.Spent = a.spent
			row.Balance = a.balance
		}
		rows = append(rows, row)
	}
	sortRows(rows, col, dir)
	return rows
}

// Totals suma las filas para el pie de la tabla.
func (uc *ClientSummaryUseCase) Totals(rows []dto.ClientSummaryRow) dto.ClientSummaryTotals {
	t := dto.ClientSummaryTotals{Spent: decimal.Zero, Balance: decimal.Zero}
	for _, r := range rows {
		t.Orders += r.Orders
		t.Spent = t.Spent.Add(r.Spent)
		t.Balance = t.Balance.Add(r.Balance)
	}
	return t
}

func sortRows(rows []dto.ClientSummaryRow, col SortColumn, dir SortDir) {
	less := func(a, b dto.ClientSummaryRow) bool {
		switch col {
		case SortByCode:
			return a.Client.Code < b.Client.Code
		case SortByName:
			return strings.ToLower(a.Client.Name) < strings.ToLower(b.Client.Name)
		case SortByOrders:
			return a.Orders < b.Orders
		case SortBySpent:
			return a.Spent.LessThan(b.Spent)
		default:
			return a.Balance.LessThan(b.Balance)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if dir == SortAsc {
			return less(rows[i], rows[j])
		}
		return less(rows[j], rows[i])
	})
}
