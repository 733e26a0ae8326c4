// Package analytics contiene las derivaciones de solo lectura: tarjetas del
// dashboard, resumen por cliente y reporte financiero. Todo se recalcula con
// un escaneo completo del documento en cada llamada; no hay caché que
// invalidar.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-libro/internal/application/dto"
	"github.com/jhoicas/pos-libro/internal/domain/accounting"
	"github.com/jhoicas/pos-libro/internal/domain/entity"
	"github.com/jhoicas/pos-libro/internal/domain/repository"
)

// DashboardUseCase genera las métricas del carrusel del dashboard.
type DashboardUseCase struct {
	store repository.DocumentStore
	now   func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.DocumentStore) *DashboardUseCase {
	return &DashboardUseCase{store: store, now: time.Now}
}

// Stats calcula las cuatro tarjetas:
//   - valor de inventario: Σ precio del tier por defecto × stock
//   - ventas de hoy: pedidos del mismo día calendario que ahora
//   - deuda pendiente: Σ (total - amountPaid) de los pedidos Unpaid
//   - ventas de la semana: ventana móvil de 7×24h, no semana calendario
func (uc *DashboardUseCase) Stats() dto.DashboardStats {
	doc := uc.store.Snapshot()
	now := uc.now()
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := dto.DashboardStats{
		InventoryValue:  decimal.Zero,
		SalesToday:      decimal.Zero,
		OutstandingDebt: decimal.Zero,
		SalesThisWeek:   decimal.Zero,
	}
	for _, p := range doc.Products {
		stats.InventoryValue = stats.InventoryValue.Add(
			p.DefaultPrice().Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	for i := range doc.Orders {
		o := &doc.Orders[i]
		total := accounting.Total(o)
		if sameCalendarDay(o.Date, now) {
			stats.SalesToday = stats.SalesToday.Add(total)
		}
		if o.Status == entity.OrderStatusUnpaid {
			stats.OutstandingDebt = stats.OutstandingDebt.Add(total.Sub(o.AmountPaid))
		}
		if !o.Date.Before(weekAgo) {
			stats.SalesThisWeek = stats.SalesThisWeek.Add(total)
		}
	}
	return stats
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
