package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sistema-bodega/bodega-api/internal/domain/entity"
	"github.com/sistema-bodega/bodega-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

const movimientoColumns = `id, articulo_id, personal_id, tipo_movimiento, cantidad, motivo_id, fecha,
		transaction_id, created_at, created_by`

// MovimientoRepo implementación del puerto MovimientoRepository sobre
// PostgreSQL (usable con pool o tx). Los movimientos son inmutables.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento; el ID lo asigna la base.
func (r *MovimientoRepo) Create(mov *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (articulo_id, personal_id, tipo_movimiento, cantidad, motivo_id, fecha,
			transaction_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	createdBy := (*string)(nil)
	if mov.CreatedBy != "" {
		createdBy = &mov.CreatedBy
	}
	err := r.q.QueryRow(context.Background(), query,
		mov.ArticuloID, nullableID(mov.PersonalID), mov.TipoMovimiento, mov.Cantidad,
		nullableID(mov.MotivoID), mov.Fecha, mov.TransactionID, mov.CreatedAt, createdBy,
	).Scan(&mov.ID)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(id int64) (*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos WHERE id = $1`
	rows, err := r.q.Query(context.Background(), query, id)
	if err != nil {
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	defer rows.Close()
	movs, err := scanMovimientos(rows)
	if err != nil {
		return nil, err
	}
	if len(movs) == 0 {
		return nil, nil
	}
	return movs[0], nil
}

// List lista movimientos con paginación, más recientes primero.
func (r *MovimientoRepo) List(limit, offset int) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos ORDER BY fecha DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	return scanMovimientos(rows)
}

// ListPrestamos devuelve los movimientos Prestamo/Regresado en orden
// cronológico ascendente, el orden de entrada del conciliador.
func (r *MovimientoRepo) ListPrestamos() ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + `
		FROM movimientos
		WHERE tipo_movimiento IN ($1, $2)
		ORDER BY fecha ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, entity.MovimientoPrestamo, entity.MovimientoRegresado)
	if err != nil {
		return nil, fmt.Errorf("list prestamos: %w", err)
	}
	defer rows.Close()
	return scanMovimientos(rows)
}

// ListPrestamosByPersonal es ListPrestamos acotado a una persona.
func (r *MovimientoRepo) ListPrestamosByPersonal(personalID int64) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + `
		FROM movimientos
		WHERE tipo_movimiento IN ($1, $2) AND personal_id = $3
		ORDER BY fecha ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query,
		entity.MovimientoPrestamo, entity.MovimientoRegresado, personalID)
	if err != nil {
		return nil, fmt.Errorf("list prestamos personal: %w", err)
	}
	defer rows.Close()
	return scanMovimientos(rows)
}

func scanMovimientos(rows pgx.Rows) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		var personal, motivo *int64
		var createdBy *string
		if err := rows.Scan(
			&m.ID, &m.ArticuloID, &personal, &m.TipoMovimiento, &m.Cantidad, &motivo,
			&m.Fecha, &m.TransactionID, &m.CreatedAt, &createdBy,
		); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil
			}
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		m.PersonalID = deref(personal)
		m.MotivoID = deref(motivo)
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
