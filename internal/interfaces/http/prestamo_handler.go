package http

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sistema-bodega/bodega-api/internal/application/dto"
	appprestamo "github.com/sistema-bodega/bodega-api/internal/application/prestamo"
)

// PrestamoHandler expone el historial conciliado de préstamos y las
// consultas de pendientes.
type PrestamoHandler struct {
	historial *appprestamo.HistorialUseCase
	pdf       appprestamo.HistorialPDFGenerator
}

// NewPrestamoHandler construye el handler.
func NewPrestamoHandler(historial *appprestamo.HistorialUseCase, pdf appprestamo.HistorialPDFGenerator) *PrestamoHandler {
	return &PrestamoHandler{historial: historial, pdf: pdf}
}

// Historial godoc
// @Summary      Historial de préstamos y devoluciones
// @Description  Filas conciliadas en orden cronológico, con duración y fechas formateadas.
// @Tags         prestamos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.HistorialResponse
// @Router       /api/prestamos/historial [get]
func (h *PrestamoHandler) Historial(c *fiber.Ctx) error {
	out, err := h.historial.Historial()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Pendientes godoc
// @Summary      Artículos con préstamo pendiente por persona
// @Description  Cantidad neta prestada (préstamos menos regresos) por artículo.
// @Tags         prestamos
// @Security     Bearer
// @Produce      json
// @Param        personalID  path  int  true  "ID de la persona"
// @Success      200  {object}  dto.PendientesResponse
// @Router       /api/prestamos/pendientes/{personalID} [get]
func (h *PrestamoHandler) Pendientes(c *fiber.Ctx) error {
	personalID, err := c.ParamsInt("personalID")
	if err != nil || personalID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "personalID numérico requerido"})
	}
	out, err := h.historial.Pendientes(int64(personalID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar historial de préstamos
// @Tags         prestamos
// @Security     Bearer
// @Produce      text/csv
// @Produce      application/pdf
// @Param        formato  query  string  false  "csv o pdf"  default(csv)
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/prestamos/historial/export [get]
func (h *PrestamoHandler) Export(c *fiber.Ctx) error {
	formato := c.Query("formato", "csv")

	out, err := h.historial.Historial()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	sello := time.Now().Format("20060102-150405")

	switch formato {
	case "csv":
		var buf bytes.Buffer
		if err := escribirHistorialCSV(&buf, out.Filas); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="historial-prestamos-%s.csv"`, sello))
		return c.Send(buf.Bytes())

	case "pdf":
		doc, err := h.pdf.GenerarHistorialPDF(c.UserContext(), out.Filas)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="historial-prestamos-%s.pdf"`, sello))
		return c.Send(doc)

	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato debe ser csv o pdf"})
	}
}
