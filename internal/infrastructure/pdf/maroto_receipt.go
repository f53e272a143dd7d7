// Package pdf implementa la representación gráfica (PDF) del recibo de una
// factura de la clínica usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre clínica + NIT  │  N° Factura + Fecha        │
//	│  ───────────────────────────────────────────────────────── │
//	│  CLIENTE: Nombre + NIT/CC + contacto                        │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLA: Cant | Descripción | P.Unit | Subtotal              │
//	│  ───────────────────────────────────────────────────────── │
//	│  TOTALES: Subtotal / IVA / Descuento / TOTAL                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/vetclinic-pro/internal/application/billing"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
	"github.com/tu-usuario/vetclinic-pro/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 94, Blue: 83}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ billing.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa billing.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// Generate genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) Generate(
	_ context.Context,
	biz billing.BusinessInfo,
	inv *entity.Invoice,
	owner *entity.Owner,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo "+inv.Number, true).
		WithAuthor(biz.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(biz, inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if owner != nil {
		m.AddRows(clienteRow(owner))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(inv.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(inv))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: identidad del negocio (izq) y número + fecha + estado (der).
func headerRow(biz billing.BusinessInfo, inv *entity.Invoice) core.Row {
	fecha := inv.IssuedAt.Format("02/01/2006")

	return row.New(20).Add(
		col.New(7).Add(
			text.New(biz.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+nonEmpty(biz.TaxID, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%s   |   Tel: %s",
				nonEmpty(biz.Address, "—"),
				nonEmpty(biz.Phone, "—"),
			), props.Text{Size: 8, Top: 15, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(inv.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha+"   |   "+string(inv.Status), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: datos del propietario.
func clienteRow(owner *entity.Owner) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(owner.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("NIT/CC: %s   |   Email: %s   |   Tel: %s",
				nonEmpty(owner.TaxID, "—"),
				nonEmpty(owner.Email, "—"),
				nonEmpty(owner.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la factura, en su orden original.
func tableItemRows(items []*entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				money.FormatCOP(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				money.FormatCOP(it.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(inv *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	labels := []core.Component{label("Subtotal:"), label("IVA (19%):")}
	values := []core.Component{
		value(money.FormatCOP(inv.Subtotal)),
		value(money.FormatCOP(inv.Tax)),
	}
	if !inv.Discount.IsZero() {
		labels = append(labels, label("Descuento:"))
		values = append(values, value("-"+money.FormatCOP(inv.Discount)))
	}
	labels = append(labels, grandLabel("TOTAL:"))
	values = append(values, grandValue(money.FormatCOP(inv.Total)))

	return row.New(30).Add(
		col.New(3), // espacio izquierdo
		col.New(3).Add(labels...),
		col.New(3).Add(values...),
		col.New(3), // espacio derecho
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
