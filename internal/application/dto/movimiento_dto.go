package dto

import (
	"time"

	"github.com/sistema-bodega/bodega-api/internal/domain/prestamo"
)

// RegistrarMovimientoRequest body para POST /api/movimientos.
// Fecha es opcional; si viene vacía el servidor usa la hora actual (el
// servidor es la fuente de verdad de id y fecha persistida).
type RegistrarMovimientoRequest struct {
	ArticuloID     int64      `json:"articulo" validate:"required"`
	PersonalID     int64      `json:"personal"`
	TipoMovimiento string     `json:"tipo_movimiento" validate:"required,oneof=Entrada Salida Prestamo Regresado"`
	Cantidad       int        `json:"cantidad" validate:"required,gt=0"`
	MotivoID       int64      `json:"motivo"`
	Fecha          *time.Time `json:"fecha,omitempty"`
}

// RegistrarLoteRequest body para POST /api/movimientos/lote: N líneas que se
// registran secuencialmente, sin rollback transversal (mejor esfuerzo).
type RegistrarLoteRequest struct {
	Lineas []RegistrarMovimientoRequest `json:"lineas" validate:"required,min=1,dive"`
}

// LineaResultado resultado por línea de un lote. Error vacío significa éxito.
type LineaResultado struct {
	Indice       int    `json:"indice"`
	MovimientoID int64  `json:"movimiento_id,omitempty"`
	Error        string `json:"error,omitempty"`
}

// RegistrarLoteResponse respuesta de un lote: una entrada por línea enviada.
type RegistrarLoteResponse struct {
	Resultados []LineaResultado `json:"resultados"`
}

// MovimientoResponse representación de un movimiento en respuestas.
type MovimientoResponse struct {
	ID             int64     `json:"id"`
	ArticuloID     int64     `json:"articulo"`
	PersonalID     int64     `json:"personal,omitempty"`
	TipoMovimiento string    `json:"tipo_movimiento"`
	Cantidad       int       `json:"cantidad"`
	MotivoID       int64     `json:"motivo,omitempty"`
	Fecha          time.Time `json:"fecha"`
}

// MovimientoListResponse listado paginado de movimientos.
type MovimientoListResponse struct {
	Items []MovimientoResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// HistorialResponse respuesta de GET /api/prestamos/historial.
type HistorialResponse struct {
	Filas []prestamo.FilaHistorial `json:"filas"`
}

// PendientesResponse respuesta de GET /api/prestamos/pendientes/:personalID.
type PendientesResponse struct {
	PersonalID int64                       `json:"personal_id"`
	Articulos  []prestamo.ArticuloPrestado `json:"articulos"`
}
