// Package receipt implementa la representación en texto plano de ancho fijo
// de una factura almacenada. El recibo se imprime en tiqueteras térmicas de
// 72 columnas y se adjunta en correos, por lo que el render debe ser
// determinista: la misma factura produce siempre los mismos bytes.
package receipt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/vetclinic-pro/internal/application/billing"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
	"github.com/tu-usuario/vetclinic-pro/pkg/money"
)

const lineWidth = 72

// Anchos de columna de la tabla de líneas:
// descripción (34) + cant (5) + precio unit (15) + subtotal (15) + separadores.
const (
	descWidth  = 34
	qtyWidth   = 5
	priceWidth = 15
)

var _ billing.ReceiptRenderer = (*TextRenderer)(nil)

// TextRenderer implementa billing.ReceiptRenderer.
type TextRenderer struct{}

// NewTextRenderer construye el renderer.
func NewTextRenderer() *TextRenderer { return &TextRenderer{} }

// Render serializa la factura a texto plano. Solo usa valores almacenados en
// la factura y la identidad del negocio: nunca la hora actual ni estado externo.
func (t *TextRenderer) Render(biz billing.BusinessInfo, inv *entity.Invoice, owner *entity.Owner) string {
	var b strings.Builder

	// ── Cabecera: negocio ────────────────────────────────────────────────
	writeCentered(&b, strings.ToUpper(biz.Name))
	if biz.TaxID != "" {
		writeCentered(&b, "NIT: "+biz.TaxID)
	}
	if biz.Address != "" {
		writeCentered(&b, biz.Address)
	}
	if biz.Phone != "" {
		writeCentered(&b, "Tel: "+biz.Phone)
	}
	writeRule(&b, '=')

	// ── Cabecera: factura ────────────────────────────────────────────────
	writeField(&b, "Factura", inv.Number)
	writeField(&b, "Fecha", inv.IssuedAt.Format("2006-01-02 15:04"))
	writeField(&b, "Estado", string(inv.Status))
	writeField(&b, "Pago", string(inv.PaymentMethod))
	if owner != nil {
		writeField(&b, "Cliente", owner.Name)
		if owner.TaxID != "" {
			writeField(&b, "NIT/CC", owner.TaxID)
		}
	}
	writeRule(&b, '-')

	// ── Líneas ───────────────────────────────────────────────────────────
	fmt.Fprintf(&b, "%-*s %*s %*s %*s\n",
		descWidth, "Descripción", qtyWidth, "Cant",
		priceWidth, "P. Unit", priceWidth, "Subtotal")
	writeRule(&b, '-')
	for _, it := range inv.Items {
		fmt.Fprintf(&b, "%-*s %*d %*s %*s\n",
			descWidth, truncate(it.Description, descWidth),
			qtyWidth, it.Quantity,
			priceWidth, money.Format(it.UnitPrice),
			priceWidth, money.Format(it.Subtotal))
	}
	writeRule(&b, '-')

	// ── Totales ──────────────────────────────────────────────────────────
	writeTotal(&b, "Subtotal", inv.Subtotal)
	writeTotal(&b, "IVA (19%)", inv.Tax)
	if !inv.Discount.IsZero() {
		writeTotal(&b, "Descuento", inv.Discount.Neg())
	}
	writeRule(&b, '=')
	writeTotal(&b, "TOTAL", inv.Total)

	// ── Notas ────────────────────────────────────────────────────────────
	if inv.Notes != "" {
		writeRule(&b, '-')
		b.WriteString("Notas: ")
		b.WriteString(inv.Notes)
		b.WriteByte('\n')
	}

	return b.String()
}

func writeCentered(b *strings.Builder, s string) {
	s = truncate(s, lineWidth)
	pad := (lineWidth - len([]rune(s))) / 2
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(s)
	b.WriteByte('\n')
}

func writeRule(b *strings.Builder, c byte) {
	b.WriteString(strings.Repeat(string(c), lineWidth))
	b.WriteByte('\n')
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-10s: %s\n", label, value)
}

func writeTotal(b *strings.Builder, label string, amount decimal.Decimal) {
	fmt.Fprintf(b, "%*s %*s\n", lineWidth-priceWidth-1, label+":", priceWidth, money.FormatCOP(amount))
}

// truncate corta s a max caracteres (runas, no bytes).
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
