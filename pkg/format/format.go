// Package format contiene los ayudantes de presentación: moneda en USD y
// nombres enmascarados para el modo privado.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Money formatea un monto como moneda USD con separador de miles, ej: $1,234.50.
func Money(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("$%.2f", f)
}

// Display devuelve el nombre visible de una entidad: en modo privado se
// muestra #<código> en lugar del nombre real.
func Display(name, code string, privateMode bool) string {
	if privateMode {
		return "#" + code
	}
	return name
}
