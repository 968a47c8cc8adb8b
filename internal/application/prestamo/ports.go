package prestamo

import (
	"context"

	domprestamo "github.com/sistema-bodega/bodega-api/internal/domain/prestamo"
)

// HistorialPDFGenerator genera el reporte PDF del historial de préstamos.
// Implementado en infraestructura (Maroto).
type HistorialPDFGenerator interface {
	GenerarHistorialPDF(ctx context.Context, filas []domprestamo.FilaHistorial) ([]byte, error)
}
