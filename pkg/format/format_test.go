package format_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-libro/pkg/format"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$120.50", format.Money(decimal.RequireFromString("120.5")))
	assert.Equal(t, "$0.00", format.Money(decimal.Zero))
	assert.Equal(t, "$19.99", format.Money(decimal.RequireFromString("19.989")))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "Acme Corp", format.Display("Acme Corp", "C1", false))
	assert.Equal(t, "#C1", format.Display("Acme Corp", "C1", true))
}
