package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sistema-bodega/bodega-api/internal/domain"
	"github.com/sistema-bodega/bodega-api/internal/domain/entity"
	"github.com/sistema-bodega/bodega-api/internal/domain/repository"
)

var _ repository.PersonalRepository = (*PersonalRepo)(nil)

// PersonalRepo implementación del puerto PersonalRepository sobre PostgreSQL.
type PersonalRepo struct {
	q Querier
}

// NewPersonalRepository construye el adaptador de persistencia para personal.
func NewPersonalRepository(q Querier) *PersonalRepo {
	return &PersonalRepo{q: q}
}

// Create persiste una persona; el correo institucional es único.
func (r *PersonalRepo) Create(p *entity.Personal) error {
	query := `
		INSERT INTO personal (correo_institucional, nombre, seccion, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.CorreoInstitucional, p.Nombre, p.Seccion, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert personal: %w", err)
	}
	return nil
}

// GetByID obtiene una persona por ID.
func (r *PersonalRepo) GetByID(id int64) (*entity.Personal, error) {
	return r.get(`SELECT id, correo_institucional, nombre, seccion, created_at FROM personal WHERE id = $1`, id)
}

// GetByCorreo obtiene una persona por correo institucional.
func (r *PersonalRepo) GetByCorreo(correo string) (*entity.Personal, error) {
	return r.get(`SELECT id, correo_institucional, nombre, seccion, created_at FROM personal WHERE correo_institucional = $1`, correo)
}

func (r *PersonalRepo) get(query string, arg any) (*entity.Personal, error) {
	var p entity.Personal
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.CorreoInstitucional, &p.Nombre, &p.Seccion, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get personal: %w", err)
	}
	return &p, nil
}

// Update actualiza una persona.
func (r *PersonalRepo) Update(p *entity.Personal) error {
	query := `UPDATE personal SET correo_institucional = $2, nombre = $3, seccion = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.CorreoInstitucional, p.Nombre, p.Seccion)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update personal: %w", err)
	}
	return nil
}

// List lista todo el personal ordenado por correo.
func (r *PersonalRepo) List() ([]*entity.Personal, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, correo_institucional, nombre, seccion, created_at FROM personal ORDER BY correo_institucional`)
	if err != nil {
		return nil, fmt.Errorf("list personal: %w", err)
	}
	defer rows.Close()
	var out []*entity.Personal
	for rows.Next() {
		var p entity.Personal
		if err := rows.Scan(&p.ID, &p.CorreoInstitucional, &p.Nombre, &p.Seccion, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan personal: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Delete elimina una persona por ID.
func (r *PersonalRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM personal WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete personal: %w", err)
	}
	return nil
}
