package entity

import "time"

// Tipos de movimiento de stock. Prestamo/Regresado alimentan el libro de
// préstamos; Entrada/Salida afectan solo el stock disponible.
const (
	MovimientoEntrada       = "Entrada"
	MovimientoSalida        = "Salida"
	MovimientoPrestamo      = "Prestamo"
	MovimientoRegresado     = "Regresado"
	MovimientoCambioEstado  = "Cambio de Estado"
	MovimientoNuevoArticulo = "Nuevo Articulo"
)

// Movimiento es un evento inmutable del historial de stock. PersonalID es 0
// para movimientos sin persona asociada (entradas, salidas de baja, etc.).
type Movimiento struct {
	ID             int64
	ArticuloID     int64
	PersonalID     int64
	TipoMovimiento string
	Cantidad       int
	MotivoID       int64
	Fecha          time.Time
	TransactionID  string
	CreatedAt      time.Time
	CreatedBy      string
}

// EsPrestamoORegreso indica si el movimiento participa del libro de préstamos.
func (m Movimiento) EsPrestamoORegreso() bool {
	return m.TipoMovimiento == MovimientoPrestamo || m.TipoMovimiento == MovimientoRegresado
}
