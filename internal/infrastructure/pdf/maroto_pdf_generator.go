// Package pdf implementa la generación de documentos PDF del sistema:
// el informe de ventas por empresa y la ficha de un informe de usuario.
//
// Layout del informe de ventas (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título del informe + período              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Artículo | Cant. | Precio Unit. | Total      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: transacciones / unidades / TOTAL VENDIDO           │
//	│  FOOTER: fecha de generación                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/reports"
	"github.com/jhoicas/Gestion-api/internal/application/sales"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	domreport "github.com/jhoicas/Gestion-api/internal/domain/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ sales.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)
var _ reports.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa los puertos de PDF usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateSalesReportPDF genera el informe de ventas de una empresa y devuelve
// sus bytes. itemNames mapea inventory_id → nombre; un artículo ausente del
// mapa se muestra como "Artículo eliminado".
func (g *MarotoPDFGenerator) GenerateSalesReportPDF(
	_ context.Context,
	companyName, periodLabel string,
	salesList []*entity.Sale,
	itemNames map[string]string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de Ventas", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(salesHeaderRow(companyName, periodLabel))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(salesTableHeaderRow())
	for _, r := range salesDetailRows(salesList, itemNames) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(salesTotalsRow(salesList))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe de ventas: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateReportPDF genera la ficha PDF de un informe de usuario.
func (g *MarotoPDFGenerator) GenerateReportPDF(_ context.Context, report *entity.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(report.Title, true).
		WithAuthor(report.UserFullName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(14).Add(col.New(12).Add(
		text.New(report.Title, props.Text{
			Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1,
		}),
		text.New("Fecha del informe: "+report.ReportDate.Format("02/01/2006"), props.Text{
			Size: 8, Top: 10, Color: colorGray,
		}),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(12).Add(
		col.New(6).Add(
			text.New("AUTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s (%s)", report.UserFullName, report.UserRole), props.Text{
				Size: 9, Top: 6,
			}),
		),
		col.New(6).Add(
			text.New("ESTADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary,
				Align: align.Right, Top: 1,
			}),
			text.New(domreport.Label(report.Status), props.Text{
				Size: 9, Align: align.Right, Top: 6,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	// Contenido en párrafos
	for _, r := range contentRows(report.Content) {
		m.AddRows(r)
	}

	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha de informe: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// salesHeaderRow: nombre de la empresa (izq) y título + período (der).
func salesHeaderRow(companyName, periodLabel string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("INFORME DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+periodLabel, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// salesTableHeaderRow: cabecera de la tabla de ventas.
func salesTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Artículo", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// salesDetailRows: una fila por venta.
func salesDetailRows(salesList []*entity.Sale, itemNames map[string]string) []core.Row {
	result := make([]core.Row, 0, len(salesList))
	for _, s := range salesList {
		itemName, ok := itemNames[s.InventoryID]
		if !ok || itemName == "" {
			itemName = "Artículo eliminado"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				s.SaleDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				itemName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", s.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(s.UnitPrice.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(s.TotalAmount.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(10).Add(col.New(12).Add(
			text.New("Sin ventas registradas en el período.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	return result
}

// salesTotalsRow: bloque de totales alineado a la derecha.
func salesTotalsRow(salesList []*entity.Sale) core.Row {
	var total decimal.Decimal
	var units int64
	for _, s := range salesList {
		total = total.Add(s.TotalAmount)
		units += s.Quantity
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			label("Transacciones:"),
			label("Unidades vendidas:"),
			text.New("TOTAL VENDIDO:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2,
			}),
		),
		col.New(4).Add(
			value(fmt.Sprintf("%d", len(salesList))),
			value(fmt.Sprintf("%d", units)),
			text.New("$"+formatMoney(total.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1,
			}),
		),
	)
}

// contentRows: el contenido del informe partido en líneas renderizables.
func contentRows(content string) []core.Row {
	var rows []core.Row
	for _, chunk := range splitEvery(content, 110) {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(chunk, props.Text{Size: 9, Top: 0.5}),
		)))
	}
	return rows
}

// footerRow: fecha de generación del documento.
func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"Documento generado el "+time.Now().Format("02/01/2006 15:04"),
			props.Text{Size: 6.5, Color: colorGray, Top: 4, Align: align.Center},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if neg {
		return "-" + string(buf)
	}
	return string(buf)
}

// splitEvery divide s en trozos de max n caracteres.
func splitEvery(s string, n int) []string {
	var parts []string
	for len(s) > n {
		parts = append(parts, s[:n])
		s = s[n:]
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}
