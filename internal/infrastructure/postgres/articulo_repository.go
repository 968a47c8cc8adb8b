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

var _ repository.ArticuloRepository = (*ArticuloRepo)(nil)

const articuloColumns = `id, nombre, descripcion, categoria_id, marca_id, modelo_id, ubicacion_id, estado_id,
		numero_serie, codigo_minvu, codigo_interno, mac, stock_actual, stock_minimo, stock_prestado,
		created_at, updated_at`

// ArticuloRepo implementación del puerto ArticuloRepository sobre PostgreSQL (usable con pool o tx).
type ArticuloRepo struct {
	q Querier
}

// NewArticuloRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewArticuloRepository(q Querier) *ArticuloRepo {
	return &ArticuloRepo{q: q}
}

// Create persiste un nuevo artículo; el ID lo asigna la base.
func (r *ArticuloRepo) Create(a *entity.Articulo) error {
	query := `
		INSERT INTO articulos (nombre, descripcion, categoria_id, marca_id, modelo_id, ubicacion_id, estado_id,
			numero_serie, codigo_minvu, codigo_interno, mac, stock_actual, stock_minimo, stock_prestado,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		a.Nombre, a.Descripcion, nullableID(a.CategoriaID), nullableID(a.MarcaID), nullableID(a.ModeloID),
		nullableID(a.UbicacionID), nullableID(a.EstadoID), a.NumeroSerie, a.CodigoMinvu, a.CodigoInterno,
		a.MAC, a.StockActual, a.StockMinimo, a.StockPrestado, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert articulo: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ArticuloRepo) GetByID(id int64) (*entity.Articulo, error) {
	return r.get(`SELECT `+articuloColumns+` FROM articulos WHERE id = $1`, id)
}

// GetForUpdate obtiene un artículo bloqueando su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *ArticuloRepo) GetForUpdate(id int64) (*entity.Articulo, error) {
	return r.get(`SELECT `+articuloColumns+` FROM articulos WHERE id = $1 FOR UPDATE`, id)
}

func (r *ArticuloRepo) get(query string, id int64) (*entity.Articulo, error) {
	var a entity.Articulo
	var categoria, marca, modelo, ubicacion, estado *int64
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Nombre, &a.Descripcion, &categoria, &marca, &modelo, &ubicacion, &estado,
		&a.NumeroSerie, &a.CodigoMinvu, &a.CodigoInterno, &a.MAC,
		&a.StockActual, &a.StockMinimo, &a.StockPrestado, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get articulo: %w", err)
	}
	a.CategoriaID = deref(categoria)
	a.MarcaID = deref(marca)
	a.ModeloID = deref(modelo)
	a.UbicacionID = deref(ubicacion)
	a.EstadoID = deref(estado)
	return &a, nil
}

// Update actualiza un artículo. Stock no se modifica por aquí (vía UpdateStock).
func (r *ArticuloRepo) Update(a *entity.Articulo) error {
	query := `
		UPDATE articulos SET nombre = $2, descripcion = $3, categoria_id = $4, marca_id = $5, modelo_id = $6,
			ubicacion_id = $7, estado_id = $8, numero_serie = $9, codigo_minvu = $10, codigo_interno = $11,
			mac = $12, stock_minimo = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Nombre, a.Descripcion, nullableID(a.CategoriaID), nullableID(a.MarcaID), nullableID(a.ModeloID),
		nullableID(a.UbicacionID), nullableID(a.EstadoID), a.NumeroSerie, a.CodigoMinvu, a.CodigoInterno,
		a.MAC, a.StockMinimo, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update articulo: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo los contadores de stock (usado por el motor de movimientos).
func (r *ArticuloRepo) UpdateStock(id int64, stockActual, stockPrestado int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE articulos SET stock_actual = $2, stock_prestado = $3, updated_at = now() WHERE id = $1`,
		id, stockActual, stockPrestado,
	)
	if err != nil {
		return fmt.Errorf("update stock articulo: %w", err)
	}
	return nil
}

// List lista artículos con paginación.
func (r *ArticuloRepo) List(limit, offset int) ([]*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + ` FROM articulos ORDER BY nombre LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListAll lista todos los artículos (tablas de referencia del conciliador).
func (r *ArticuloRepo) ListAll() ([]*entity.Articulo, error) {
	return r.list(`SELECT ` + articuloColumns + ` FROM articulos ORDER BY id`)
}

func (r *ArticuloRepo) list(query string, args ...any) ([]*entity.Articulo, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articulos: %w", err)
	}
	defer rows.Close()
	var out []*entity.Articulo
	for rows.Next() {
		var a entity.Articulo
		var categoria, marca, modelo, ubicacion, estado *int64
		if err := rows.Scan(
			&a.ID, &a.Nombre, &a.Descripcion, &categoria, &marca, &modelo, &ubicacion, &estado,
			&a.NumeroSerie, &a.CodigoMinvu, &a.CodigoInterno, &a.MAC,
			&a.StockActual, &a.StockMinimo, &a.StockPrestado, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan articulo: %w", err)
		}
		a.CategoriaID = deref(categoria)
		a.MarcaID = deref(marca)
		a.ModeloID = deref(modelo)
		a.UbicacionID = deref(ubicacion)
		a.EstadoID = deref(estado)
		out = append(out, &a)
	}
	return out, rows.Err()
}

// Delete elimina un artículo por ID.
func (r *ArticuloRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM articulos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete articulo: %w", err)
	}
	return nil
}

// nullableID convierte 0 (sin referencia) en NULL.
func nullableID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func deref(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
