package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-libro/internal/domain/accounting"
	"github.com/jhoicas/pos-libro/internal/domain/entity"
	"github.com/jhoicas/pos-libro/internal/domain/repository"
	"github.com/jhoicas/pos-libro/internal/infrastructure/localstore"
	"github.com/jhoicas/pos-libro/internal/seed"
	"github.com/jhoicas/pos-libro/pkg/logger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newStore(t *testing.T) repository.DocumentStore {
	t.Helper()
	return localstore.NewDocumentStore(localstore.NewMemoryKV(), seed.Document(), logger.Nop())
}

// addOrder inserta un pedido directo en el documento con el estado derivado.
func addOrder(t *testing.T, store repository.DocumentStore, o entity.Order) {
	t.Helper()
	doc := store.Snapshot()
	o.Status = accounting.Status(&o)
	doc.Orders = append(doc.Orders, o)
	require.NoError(t, store.Replace(doc))
}

// Escenario: un cliente con un pedido sobrepagado (delta negativo) y uno
// subpagado. El saldo agregado suma los deltas crudos y NO se recorta en
// cero, a diferencia del saldo mostrado por pedido.
func TestClientSummary_SaldoSinRecorte(t *testing.T) {
	store := newStore(t)
	addOrder(t, store, entity.Order{
		ID: "o1", Code: "O1", ClientID: "c1", Date: time.Now(),
		Items:      []entity.OrderItem{{ProductID: "p1", Quantity: 1, Price: dec("10")}},
		AmountPaid: dec("15"), // sobrepagado: delta -5
	})
	addOrder(t, store, entity.Order{
		ID: "o2", Code: "O2", ClientID: "c1", Date: time.Now(),
		Items:      []entity.OrderItem{{ProductID: "p1", Quantity: 2, Price: dec("10")}},
		Fees:       dec("5"),
		Discount:   dec("3"),
		AmountPaid: dec("2"), // subpagado: delta 20
	})

	uc := NewClientSummaryUseCase(store)
	rows := uc.Summaries(SortByCode, SortAsc)
	require.Len(t, rows, 3, "una fila por cliente del semilla")

	r := rows[0]
	assert.Equal(t, "c1", r.Client.ID)
	assert.Equal(t, 2, r.Orders)
	assert.Equal(t, "32", r.Spent.String())
	assert.Equal(t, "15", r.Balance.String(), "suma de deltas crudos: -5 + 20")

	// Clientes sin pedidos aparecen con ceros.
	assert.Equal(t, 0, rows[1].Orders)
	assert.True(t, rows[1].Spent.IsZero())
}

func TestClientSummary_SaldoAgregadoPuedeSerNegativo(t *testing.T) {
	store := newStore(t)
	addOrder(t, store, entity.Order{
		ID: "o1", Code: "O1", ClientID: "c2", Date: time.Now(),
		Items:      []entity.OrderItem{{ProductID: "p1", Quantity: 1, Price: dec("10")}},
		AmountPaid: dec("25"),
	})

	uc := NewClientSummaryUseCase(store)
	rows := uc.Summaries(SortByBalance, SortAsc)
	assert.Equal(t, "c2", rows[0].Client.ID)
	assert.Equal(t, "-15", rows[0].Balance.String())
}

func TestClientSummary_OrdenYTotales(t *testing.T) {
	store := newStore(t)
	addOrder(t, store, entity.Order{
		ID: "o1", Code: "O1", ClientID: "c3", Date: time.Now(),
		Items: []entity.OrderItem{{ProductID: "p2", Quantity: 1, Price: dec("34.99")}},
	})
	addOrder(t, store, entity.Order{
		ID: "o2", Code: "O2", ClientID: "c1", Date: time.Now(),
		Items: []entity.OrderItem{{ProductID: "p1", Quantity: 1, Price: dec("19.99")}},
	})

	uc := NewClientSummaryUseCase(store)
	rows := uc.Summaries(SortBySpent, SortDesc)
	assert.Equal(t, "c3", rows[0].Client.ID, "mayor gasto primero")
	assert.Equal(t, "c1", rows[1].Client.ID)

	totals := uc.Totals(rows)
	assert.Equal(t, 2, totals.Orders)
	assert.Equal(t, "54.98", totals.Spent.String())
	assert.Equal(t, "54.98", totals.Balance.String())
}

func TestDashboardStats(t *testing.T) {
	store := newStore(t)
	// En hora local: "hoy" compara días calendario locales.
	now := time.Date(2026, 8, 20, 15, 0, 0, 0, time.Local)

	// Hoy, sin pagar.
	addOrder(t, store, entity.Order{
		ID: "o1", Code: "O1", ClientID: "c1", Date: now.Add(-2 * time.Hour),
		Items: []entity.OrderItem{{ProductID: "p1", Quantity: 2, Price: dec("19.99")}},
	})
	// Hace tres días, pagado: cuenta en la semana, no en hoy ni en deuda.
	addOrder(t, store, entity.Order{
		ID: "o2", Code: "O2", ClientID: "c2", Date: now.Add(-72 * time.Hour),
		Items:      []entity.OrderItem{{ProductID: "p3", Quantity: 1, Price: dec("9.99")}},
		AmountPaid: dec("9.99"),
	})
	// Hace un mes: solo aporta a la deuda pendiente.
	addOrder(t, store, entity.Order{
		ID: "o3", Code: "O3", ClientID: "c2", Date: now.Add(-30 * 24 * time.Hour),
		Items:      []entity.OrderItem{{ProductID: "p2", Quantity: 1, Price: dec("34.99")}},
		AmountPaid: dec("4.99"),
	})

	uc := NewDashboardUseCase(store)
	uc.now = func() time.Time { return now }
	stats := uc.Stats()

	// Inventario del semilla: 42×19.99 + 18×34.99 + 60×9.99 = 2068.80
	assert.Equal(t, "2068.8", stats.InventoryValue.String())
	assert.Equal(t, "39.98", stats.SalesToday.String())
	assert.Equal(t, "49.97", stats.SalesThisWeek.String())
	// Deuda: o1 completa (39.98) + o3 (34.99-4.99 = 30)
	assert.Equal(t, "69.98", stats.OutstandingDebt.String())
}

func TestReport_RangoYMetricas(t *testing.T) {
	store := newStore(t)
	jan := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 5, 12, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	addOrder(t, store, entity.Order{
		ID: "o1", Code: "O1", ClientID: "c1", Date: jan,
		Items: []entity.OrderItem{{ProductID: "p1", Quantity: 1, Price: dec("100")}},
	})
	addOrder(t, store, entity.Order{
		ID: "o2", Code: "O2", ClientID: "c1", Date: feb,
		Items: []entity.OrderItem{{ProductID: "p2", Quantity: 2, Price: dec("50")}},
	})
	addOrder(t, store, entity.Order{
		ID: "o3", Code: "O3", ClientID: "c2", Date: mar,
		Items: []entity.OrderItem{{ProductID: "p1", Quantity: 3, Price: dec("100")}},
	})

	uc := NewReportsUseCase(store)

	// Rango inclusivo: enero y febrero.
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := feb
	rep := uc.Report(&from, &to)

	assert.Equal(t, "200", rep.Revenue.String())
	assert.Equal(t, "200", rep.Profit.String(), "COGS fijo en cero")
	// Gastos sin filtrar por rango: el semilla trae 120.50.
	assert.Equal(t, "120.5", rep.Expenses.String())
	assert.Equal(t, "79.5", rep.Net.String())

	// Rankings etiquetados por id crudo, no por nombre.
	require.Len(t, rep.TopClients, 1)
	assert.Equal(t, "c1", rep.TopClients[0].Key)
	require.Len(t, rep.TopProducts, 2)
	assert.Equal(t, "p1", rep.TopProducts[0].Key)
	assert.Equal(t, "100", rep.TopProducts[0].Total.String())

	require.Len(t, rep.ExpensesByCategory, 1)
	assert.Equal(t, "Supplies", rep.ExpensesByCategory[0].Key)

	// Buckets mensuales ascendentes por clave YYYY-MM.
	require.Len(t, rep.MonthlySales, 2)
	assert.Equal(t, "2026-01", rep.MonthlySales[0].Month)
	assert.Equal(t, "100", rep.MonthlySales[0].Total.String())
	assert.Equal(t, "2026-02", rep.MonthlySales[1].Month)
}

func TestReport_SinRango(t *testing.T) {
	store := newStore(t)
	addOrder(t, store, entity.Order{
		ID: "o1", Code: "O1", ClientID: "c1", Date: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Items: []entity.OrderItem{{ProductID: "p3", Quantity: 1, Price: dec("9.99")}},
	})

	uc := NewReportsUseCase(store)
	rep := uc.Report(nil, nil)
	assert.Equal(t, "9.99", rep.Revenue.String())
	require.Len(t, rep.MonthlySales, 1)
	assert.Equal(t, "2025-12", rep.MonthlySales[0].Month)
}
