package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/vetclinic-pro/internal/application/billing"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
)

func fixtureInvoice() (*entity.Invoice, *entity.Owner) {
	issued := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	inv := &entity.Invoice{
		ID:            "inv-1",
		OwnerID:       "own-1",
		Prefix:        "FAC",
		Sequence:      7,
		Number:        "FAC-000007",
		IssuedAt:      issued,
		Subtotal:      decimal.NewFromInt(62500),
		Tax:           decimal.NewFromInt(11875),
		Discount:      decimal.Zero,
		Total:         decimal.NewFromInt(74375),
		PaymentMethod: entity.PaymentCash,
		Status:        entity.InvoiceStatusPending,
		Notes:         "control en 15 días",
		Items: []*entity.LineItem{
			{
				ID: "li-1", InvoiceID: "inv-1", Kind: entity.LineItemService,
				Description: "Consulta general", Quantity: 1,
				UnitPrice: decimal.NewFromInt(50000), Subtotal: decimal.NewFromInt(50000),
				Position: 0,
			},
			{
				ID: "li-2", InvoiceID: "inv-1", Kind: entity.LineItemProduct,
				Description: "Desparasitante canino 10ml con aplicador incluido de regalo",
				Quantity:    1,
				UnitPrice:   decimal.NewFromInt(12500), Subtotal: decimal.NewFromInt(12500),
				Position: 1,
			},
		},
	}
	owner := &entity.Owner{ID: "own-1", Name: "Carolina Pérez", TaxID: "52.841.303"}
	return inv, owner
}

var testBiz = billing.BusinessInfo{
	Name:    "VetClinic Pro",
	TaxID:   "900.123.456-7",
	Address: "Cra 15 # 93-60, Bogotá",
	Phone:   "+57 601 555 0134",
}

func TestRender_EsDeterminista(t *testing.T) {
	inv, owner := fixtureInvoice()
	r := NewTextRenderer()

	primera := r.Render(testBiz, inv, owner)
	segunda := r.Render(testBiz, inv, owner)

	assert.Equal(t, primera, segunda, "el mismo recibo debe producir bytes idénticos")
}

func TestRender_ContenidoDelRecibo(t *testing.T) {
	inv, owner := fixtureInvoice()
	out := NewTextRenderer().Render(testBiz, inv, owner)

	assert.Contains(t, out, "VETCLINIC PRO")
	assert.Contains(t, out, "FAC-000007")
	assert.Contains(t, out, "2025-03-14 10:30")
	assert.Contains(t, out, "PENDING")
	assert.Contains(t, out, "CASH")
	assert.Contains(t, out, "Carolina Pérez")
	assert.Contains(t, out, "Consulta general")
	assert.Contains(t, out, "IVA (19%)")
	assert.Contains(t, out, "Notas: control en 15 días")
}

func TestRender_DescripcionLargaSeTrunca(t *testing.T) {
	inv, owner := fixtureInvoice()
	out := NewTextRenderer().Render(testBiz, inv, owner)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), lineWidth, "línea excede el ancho fijo: %q", line)
	}
	assert.NotContains(t, out, "de regalo", "la descripción larga debe truncarse")
}

func TestRender_DescuentoSoloSiExiste(t *testing.T) {
	inv, owner := fixtureInvoice()
	sin := NewTextRenderer().Render(testBiz, inv, owner)
	require.NotContains(t, sin, "Descuento")

	inv.Discount = decimal.NewFromInt(5000)
	inv.Total = decimal.NewFromInt(69375)
	con := NewTextRenderer().Render(testBiz, inv, owner)
	assert.Contains(t, con, "Descuento")
}

func TestRender_SinPropietarioOmiteBloqueCliente(t *testing.T) {
	inv, _ := fixtureInvoice()
	out := NewTextRenderer().Render(testBiz, inv, nil)

	assert.NotContains(t, out, "Cliente")
	assert.Contains(t, out, "FAC-000007")
}
