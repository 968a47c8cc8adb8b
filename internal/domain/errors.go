package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrStockInsuficiente    = errors.New("stock insuficiente")
	ErrSinPrestamoAbierto   = errors.New("el personal no tiene esa cantidad prestada")
	ErrFechaRegresoInvalida = errors.New("la fecha de regreso es anterior a la fecha de préstamo")
	ErrMotivoRequerido      = errors.New("motivo requerido")
	ErrLimiteDevolucion     = errors.New("solo se permite devolver una unidad por línea")
)
