package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sistema-bodega/bodega-api/internal/application/dto"
	"github.com/sistema-bodega/bodega-api/internal/application/movimiento"
	"github.com/sistema-bodega/bodega-api/internal/domain"
)

// MovimientoHandler maneja el registro y consulta de movimientos de bodega.
type MovimientoHandler struct {
	registrar *movimiento.RegistrarUseCase
	consulta  *movimiento.ConsultaUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(registrar *movimiento.RegistrarUseCase, consulta *movimiento.ConsultaUseCase) *MovimientoHandler {
	return &MovimientoHandler{registrar: registrar, consulta: consulta}
}

// Create godoc
// @Summary      Registrar movimiento
// @Description  Entrada, Salida, Prestamo o Regresado; ajusta stock en la misma transacción.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Create(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	id, err := h.registrar.Registrar(c.UserContext(), in)
	if err != nil {
		return respuestaErrorMovimiento(c, err)
	}
	out, err := h.consulta.GetByID(id)
	if err != nil || out == nil {
		// El movimiento quedó registrado aunque la relectura falle.
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateLote godoc
// @Summary      Registrar lote de movimientos
// @Description  Registra cada línea secuencialmente; las líneas que fallan no revierten las anteriores.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarLoteRequest  true  "Líneas del lote"
// @Success      200   {object}  dto.RegistrarLoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movimientos/lote [post]
func (h *MovimientoHandler) CreateLote(c *fiber.Ctx) error {
	var in dto.RegistrarLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Lineas) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el lote requiere al menos una línea"})
	}
	out := h.registrar.RegistrarLote(c.UserContext(), in)
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.MovimientoListResponse
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.consulta.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id} [get]
func (h *MovimientoHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.consulta.GetByID(int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
	}
	return c.JSON(out)
}

// respuestaErrorMovimiento mapea los errores de dominio del registro de
// movimientos a estados HTTP.
func respuestaErrorMovimiento(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrMotivoRequerido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrStockInsuficiente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFICIENTE", Message: err.Error()})
	case errors.Is(err, domain.ErrSinPrestamoAbierto):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SIN_PRESTAMO_ABIERTO", Message: err.Error()})
	case errors.Is(err, domain.ErrLimiteDevolucion):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LIMITE_DEVOLUCION", Message: err.Error()})
	case errors.Is(err, domain.ErrFechaRegresoInvalida):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "FECHA_REGRESO_INVALIDA", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
