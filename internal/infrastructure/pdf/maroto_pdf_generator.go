// Package pdf implementa la generación del reporte PDF del historial de
// préstamos y devoluciones de bodega.
//
// Layout de la página A4 (horizontal):
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: Sistema Bodega  │  Historial de Préstamos + Fecha   │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: Artículo | Persona | Sección | Tipo | Cant |         │
//	│         F.Préstamo | F.Regreso | Duración                    │
//	│  ──────────────────────────────────────────────────────────  │
//	│  FOOTER: total de filas + leyenda                            │
//	└──────────────────────────────────────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appprestamo "github.com/sistema-bodega/bodega-api/internal/application/prestamo"
	domprestamo "github.com/sistema-bodega/bodega-api/internal/domain/prestamo"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAccent  = &props.Color{Red: 170, Green: 60, Blue: 20}
)

var _ appprestamo.HistorialPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa prestamo.HistorialPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarHistorialPDF genera el PDF del historial y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarHistorialPDF(
	_ context.Context,
	filas []domprestamo.FilaHistorial,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Historial de Préstamos", true).
		WithAuthor("Sistema Bodega", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, f := range filas {
		m.AddRows(tableDetailRow(f))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(filas)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del sistema (izq) y título + fecha de emisión (der).
func headerRow() core.Row {
	emitido := domprestamo.FormatearFecha(time.Now())
	return row.New(16).Add(
		col.New(6).Add(
			text.New("Sistema Bodega", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Control de inventario y préstamos", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("HISTORIAL DE PRÉSTAMOS Y DEVOLUCIONES", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+emitido, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del historial.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Artículo", 3, align.Left),
		h("Persona", 2, align.Left),
		h("Sección", 1, align.Left),
		h("Tipo", 1, align.Center),
		h("Cant.", 1, align.Center),
		h("F. Préstamo", 1, align.Center),
		h("F. Regreso", 1, align.Center),
		h("Duración", 2, align.Center),
	)
}

// tableDetailRow: una fila del historial conciliado.
func tableDetailRow(f domprestamo.FilaHistorial) core.Row {
	c := func(value string, size int, a align.Type, color *props.Color) core.Col {
		p := props.Text{Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1}
		if color != nil {
			p.Color = color
		}
		return col.New(size).Add(text.New(value, p))
	}
	tipoColor := colorGray
	if f.TipoMovimiento == "Prestamo" {
		tipoColor = colorAccent
	}
	return row.New(6).Add(
		c(f.Articulo, 3, align.Left, nil),
		c(f.Nombre, 2, align.Left, nil),
		c(f.Seccion, 1, align.Left, nil),
		c(f.TipoMovimiento, 1, align.Center, tipoColor),
		c(fmt.Sprintf("%d", f.Cantidad), 1, align.Center, nil),
		c(f.FechaPrestamo, 1, align.Center, nil),
		c(f.FechaRegreso, 1, align.Center, nil),
		c(f.Duracion, 2, align.Center, nil),
	)
}

// footerRow: total de filas + leyenda.
func footerRow(total int) core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Total de movimientos: %d", total), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 2, Color: colorPrimary,
			}),
		),
		col.New(6).Add(
			text.New("Horario de referencia: Chile continental (America/Santiago).", props.Text{
				Size: 7, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}
