// Package seed define el documento inicial con el que arranca la aplicación
// y al que vuelve un reinicio completo de datos.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-libro/internal/domain/entity"
)

// Document construye el documento inicial: tres clientes, tres productos con
// precios por tier y un gasto de ejemplo. Sin pedidos.
func Document() *entity.Document {
	return &entity.Document{
		Clients: []entity.Client{
			{ID: "c1", Code: "C1", Name: "Acme Corp"},
			{ID: "c2", Code: "C2", Name: "Blue Horizon"},
			{ID: "c3", Code: "C3", Name: "Nimbus Labs"},
		},
		Products: []entity.Product{
			{
				ID: "p1", Code: "P1", Name: "Liquid Glass 500ml", Stock: 42,
				Pricing: []entity.PricingTier{
					{Name: "Retail", Price: decimal.NewFromFloat(19.99)},
					{Name: "Wholesale", Price: decimal.NewFromFloat(14.5)},
				},
				Cost: decimal.NewFromFloat(8.0),
			},
			{
				ID: "p2", Code: "P2", Name: "Liquid Glass 1L", Stock: 18,
				Pricing: []entity.PricingTier{
					{Name: "Retail", Price: decimal.NewFromFloat(34.99)},
					{Name: "Wholesale", Price: decimal.NewFromFloat(26.0)},
				},
				Cost: decimal.NewFromFloat(15.0),
			},
			{
				ID: "p3", Code: "P3", Name: "Applicator Kit", Stock: 60,
				Pricing: []entity.PricingTier{
					{Name: "Standard", Price: decimal.NewFromFloat(9.99)},
				},
				Cost: decimal.NewFromFloat(3.0),
			},
		},
		Orders: []entity.Order{},
		Expenses: []entity.Expense{
			{
				ID: "e1", Code: "E1", Date: time.Now(),
				Category: "Supplies", Description: "Packaging",
				Amount: decimal.NewFromFloat(120.50),
			},
		},
	}
}
