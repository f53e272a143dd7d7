package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/vetclinic-pro/pkg/money"
)

func TestFormat_AgrupacionDeMiles(t *testing.T) {
	assert.Equal(t, "0,00", money.Format(decimal.Zero))
	assert.Equal(t, "0,50", money.Format(decimal.RequireFromString("0.5")))
	assert.Equal(t, "50.000,00", money.Format(decimal.NewFromInt(50000)))
	assert.Equal(t, "1.234.567,89", money.Format(decimal.RequireFromString("1234567.89")))
}

func TestFormat_MontoGrandeExacto(t *testing.T) {
	// no representable exactamente en float64
	assert.Equal(t, "9.007.199.254.740.993,10",
		money.Format(decimal.RequireFromString("9007199254740993.10")))
}

func TestFormat_RedondeaADosDecimales(t *testing.T) {
	assert.Equal(t, "10,01", money.Format(decimal.RequireFromString("10.005")))
	assert.Equal(t, "9,99", money.Format(decimal.RequireFromString("9.994")))
}

func TestFormat_Negativo(t *testing.T) {
	assert.Equal(t, "-1,50", money.Format(decimal.RequireFromString("-1.5")))
}

func TestFormatCOP_Simbolo(t *testing.T) {
	assert.Equal(t, "$ 59.500,00", money.FormatCOP(decimal.NewFromInt(59500)))
}
