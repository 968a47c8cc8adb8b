package repository

import "github.com/sistema-bodega/bodega-api/internal/domain/entity"

// MovimientoRepository define el puerto de persistencia para Movimiento.
// Los movimientos son inmutables: no hay Update ni Delete.
type MovimientoRepository interface {
	Create(mov *entity.Movimiento) error
	GetByID(id int64) (*entity.Movimiento, error)
	List(limit, offset int) ([]*entity.Movimiento, error)
	// ListPrestamos devuelve todos los movimientos Prestamo/Regresado
	// ordenados ascendentemente por fecha, el orden que espera el libro
	// de préstamos.
	ListPrestamos() ([]*entity.Movimiento, error)
	// ListPrestamosByPersonal es ListPrestamos acotado a una persona.
	ListPrestamosByPersonal(personalID int64) ([]*entity.Movimiento, error)
}
