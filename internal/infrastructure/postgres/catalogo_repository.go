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

var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// tablasCatalogo es la lista blanca de tablas de referencia id/nombre. El
// nombre de tabla se interpola en el SQL, por eso solo se aceptan estas.
var tablasCatalogo = map[string]bool{
	entity.CatalogoCategorias:  true,
	entity.CatalogoMarcas:      true,
	entity.CatalogoModelos:     true,
	entity.CatalogoUbicaciones: true,
	entity.CatalogoEstados:     true,
	entity.CatalogoMotivos:     true,
}

// CatalogoRepo implementación de CatalogoRepository sobre PostgreSQL para una
// tabla de referencia concreta. Se construye una instancia por catálogo.
type CatalogoRepo struct {
	q     Querier
	tabla string
}

// NewCatalogoRepository construye el adaptador para la tabla indicada.
// Un nombre de tabla fuera de la lista blanca es un error de programación.
func NewCatalogoRepository(q Querier, tabla string) *CatalogoRepo {
	if !tablasCatalogo[tabla] {
		panic(fmt.Sprintf("postgres: tabla de catálogo desconocida %q", tabla))
	}
	return &CatalogoRepo{q: q, tabla: tabla}
}

// Create persiste una entrada; el ID lo asigna la base.
func (r *CatalogoRepo) Create(item *entity.Catalogo) error {
	query := fmt.Sprintf(`INSERT INTO %s (nombre, created_at) VALUES ($1, $2) RETURNING id`, r.tabla)
	err := r.q.QueryRow(context.Background(), query, item.Nombre, item.CreatedAt).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", r.tabla, err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *CatalogoRepo) GetByID(id int64) (*entity.Catalogo, error) {
	query := fmt.Sprintf(`SELECT id, nombre, created_at FROM %s WHERE id = $1`, r.tabla)
	var item entity.Catalogo
	err := r.q.QueryRow(context.Background(), query, id).Scan(&item.ID, &item.Nombre, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.tabla, err)
	}
	return &item, nil
}

// GetByNombre obtiene una entrada por nombre, sin distinguir mayúsculas.
func (r *CatalogoRepo) GetByNombre(nombre string) (*entity.Catalogo, error) {
	query := fmt.Sprintf(`SELECT id, nombre, created_at FROM %s WHERE lower(nombre) = lower($1)`, r.tabla)
	var item entity.Catalogo
	err := r.q.QueryRow(context.Background(), query, nombre).Scan(&item.ID, &item.Nombre, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s by nombre: %w", r.tabla, err)
	}
	return &item, nil
}

// Update renombra una entrada.
func (r *CatalogoRepo) Update(item *entity.Catalogo) error {
	query := fmt.Sprintf(`UPDATE %s SET nombre = $2 WHERE id = $1`, r.tabla)
	_, err := r.q.Exec(context.Background(), query, item.ID, item.Nombre)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update %s: %w", r.tabla, err)
	}
	return nil
}

// List lista todas las entradas ordenadas por nombre.
func (r *CatalogoRepo) List() ([]*entity.Catalogo, error) {
	query := fmt.Sprintf(`SELECT id, nombre, created_at FROM %s ORDER BY nombre`, r.tabla)
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.tabla, err)
	}
	defer rows.Close()
	var out []*entity.Catalogo
	for rows.Next() {
		var item entity.Catalogo
		if err := rows.Scan(&item.ID, &item.Nombre, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.tabla, err)
		}
		out = append(out, &item)
	}
	return out, rows.Err()
}

// Delete elimina una entrada por ID.
func (r *CatalogoRepo) Delete(id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tabla)
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.tabla, err)
	}
	return nil
}
