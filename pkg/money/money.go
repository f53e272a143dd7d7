package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formato de montos para recibos: agrupación de miles según es-CO
// (ej. 1.190.000,00). La aritmética de los montos vive en decimal; aquí
// solo se formatea para presentación.

var printer = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP formatea un monto en pesos colombianos con símbolo.
func FormatCOP(d decimal.Decimal) string {
	return "$ " + Format(d)
}

// Format formatea un monto con separadores de miles y dos decimales.
// Los enteros y los centavos se extraen del decimal sin pasar por float;
// el valor se conserva exacto también por encima de 2^53.
func Format(d decimal.Decimal) string {
	r := d.Round(2)
	abs := r.Abs()
	units := abs.IntPart()
	cents := abs.Sub(decimal.NewFromInt(units)).Shift(2).IntPart()

	out := printer.Sprintf("%d", units) + fmt.Sprintf(",%02d", cents)
	if r.IsNegative() {
		out = "-" + out
	}
	return out
}
