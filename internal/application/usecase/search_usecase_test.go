package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-libro/internal/application/dto"
	"github.com/jhoicas/pos-libro/internal/domain/entity"
	"github.com/jhoicas/pos-libro/pkg/logger"
)

func TestSearch(t *testing.T) {
	store := newStore(t)
	orders := NewOrderUseCase(store, logger.Nop())
	_, _, err := orders.Upsert(dto.OrderPatch{
		ClientID: strPtr("c1"),
		Items:    []entity.OrderItem{{ProductID: "p1", Quantity: 1, Price: dec("19.99")}},
	})
	require.NoError(t, err)

	uc := NewSearchUseCase(store)

	// Sin distinguir mayúsculas, por nombre o código.
	res := uc.Search("acme")
	require.Len(t, res.Clients, 1)
	assert.Equal(t, "c1", res.Clients[0].ID)
	// El pedido de Acme coincide por el nombre de su cliente.
	assert.Len(t, res.Orders, 1)

	res = uc.Search("liquid glass")
	assert.Len(t, res.Products, 2)

	res = uc.Search("P3")
	require.Len(t, res.Products, 1)
	assert.Equal(t, "Applicator Kit", res.Products[0].Name)

	res = uc.Search("O1")
	assert.Len(t, res.Orders, 1)
}

func TestSearch_ConsultaVacia(t *testing.T) {
	uc := NewSearchUseCase(newStore(t))
	res := uc.Search("   ")
	assert.Equal(t, dto.SearchResults{}, res)
}
