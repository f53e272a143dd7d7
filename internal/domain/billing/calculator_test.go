package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/vetclinic-pro/internal/domain"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/billing"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vector de referencia del modelo aritmético:
//
//	items    = [{SERVICE, qty=1, unitPrice=50000}]
//	subtotal = 50000, tax = 50000 × 0.19 = 9500, discount = 0, total = 59500
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotals_VectorReferencia(t *testing.T) {
	items, err := billing.BuildLineItems([]billing.ItemInput{
		{Kind: entity.LineItemService, Description: "Consulta general", Quantity: 1, UnitPrice: decimal.NewFromInt(50000)},
	})
	require.NoError(t, err)

	totals, err := billing.ComputeTotals(items, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(50000).Equal(totals.Subtotal), "subtotal debe ser 50000, fue %s", totals.Subtotal)
	assert.True(t, decimal.NewFromInt(9500).Equal(totals.Tax), "tax debe ser 9500, fue %s", totals.Tax)
	assert.True(t, decimal.Zero.Equal(totals.Discount), "discount por defecto debe ser 0")
	assert.True(t, decimal.NewFromInt(59500).Equal(totals.Total), "total debe ser 59500, fue %s", totals.Total)
}

func TestComputeTotals_SubtotalEsSumaDeLineas(t *testing.T) {
	items, err := billing.BuildLineItems([]billing.ItemInput{
		{Kind: entity.LineItemService, Description: "Vacunación triple felina", Quantity: 2, UnitPrice: decimal.NewFromInt(35000)},
		{Kind: entity.LineItemProduct, Description: "Desparasitante 10ml", Quantity: 3, UnitPrice: decimal.NewFromInt(12500)},
	})
	require.NoError(t, err)

	totals, err := billing.ComputeTotals(items, decimal.Zero)
	require.NoError(t, err)

	// 2×35000 + 3×12500 = 107500
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Subtotal)
	}
	assert.True(t, sum.Equal(totals.Subtotal), "subtotal == Σ subtotales de línea")
	assert.True(t, decimal.NewFromInt(107500).Equal(totals.Subtotal))
	assert.True(t, totals.Subtotal.Mul(billing.TaxRate).Round(2).Equal(totals.Tax), "tax == round(subtotal × 0.19)")
	assert.True(t, totals.Subtotal.Add(totals.Tax).Sub(totals.Discount).Equal(totals.Total), "total == subtotal + tax − discount")
}

func TestComputeTotals_DescuentoAplicado(t *testing.T) {
	items, err := billing.BuildLineItems([]billing.ItemInput{
		{Kind: entity.LineItemService, Description: "Baño medicado", Quantity: 1, UnitPrice: decimal.NewFromInt(40000)},
	})
	require.NoError(t, err)

	totals, err := billing.ComputeTotals(items, decimal.NewFromInt(5000))
	require.NoError(t, err)

	// 40000 + 7600 − 5000 = 42600
	assert.True(t, decimal.NewFromInt(42600).Equal(totals.Total))
}

func TestComputeTotals_TotalNegativoRechazado(t *testing.T) {
	items, err := billing.BuildLineItems([]billing.ItemInput{
		{Kind: entity.LineItemProduct, Description: "Collar antipulgas", Quantity: 1, UnitPrice: decimal.NewFromInt(1000)},
	})
	require.NoError(t, err)

	// Descuento mayor que subtotal + tax
	_, err = billing.ComputeTotals(items, decimal.NewFromInt(10000))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "total cannot be negative")
}

func TestComputeTotals_DescuentoNegativoRechazado(t *testing.T) {
	items, err := billing.BuildLineItems([]billing.ItemInput{
		{Kind: entity.LineItemService, Description: "Consulta", Quantity: 1, UnitPrice: decimal.NewFromInt(50000)},
	})
	require.NoError(t, err)

	_, err = billing.ComputeTotals(items, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Validación de líneas ──────────────────────────────────────────────────────

func TestBuildLineItems_ListaVaciaRechazada(t *testing.T) {
	_, err := billing.BuildLineItems(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "invoice must contain at least one item")
}

func TestBuildLineItems_CantidadCeroRechazada(t *testing.T) {
	_, err := billing.BuildLineItems([]billing.ItemInput{
		{Kind: entity.LineItemProduct, Description: "Alimento premium 2kg", Quantity: 0, UnitPrice: decimal.NewFromInt(1000)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "quantity must be >= 1")
}

func TestBuildLineItems_PrecioNoPositivoRechazado(t *testing.T) {
	for _, price := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-100)} {
		_, err := billing.BuildLineItems([]billing.ItemInput{
			{Kind: entity.LineItemService, Description: "Consulta", Quantity: 1, UnitPrice: price},
		})
		require.Error(t, err, "precio %s debe ser rechazado", price)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "unit price must be positive")
	}
}

func TestBuildLineItems_KindDesconocidoRechazado(t *testing.T) {
	_, err := billing.BuildLineItems([]billing.ItemInput{
		{Kind: "BUNDLE", Description: "x", Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildLineItems_SubtotalYPosicionPorLinea(t *testing.T) {
	items, err := billing.BuildLineItems([]billing.ItemInput{
		{Kind: entity.LineItemService, Description: "Radiografía", Quantity: 2, UnitPrice: decimal.NewFromInt(80000)},
		{Kind: entity.LineItemProduct, Description: "Venda elástica", Quantity: 4, UnitPrice: decimal.NewFromInt(6000)},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.True(t, decimal.NewFromInt(160000).Equal(items[0].Subtotal), "subtotal de línea = qty × unitPrice")
	assert.True(t, decimal.NewFromInt(24000).Equal(items[1].Subtotal))
	assert.Equal(t, 1, items[0].Position, "las líneas conservan el orden solicitado")
	assert.Equal(t, 2, items[1].Position)
}
