package dto

import "time"

// ── Artículos ─────────────────────────────────────────────────────────────────

// CreateArticuloRequest body para POST /api/articulos.
type CreateArticuloRequest struct {
	Nombre        string `json:"nombre" validate:"required"`
	Descripcion   string `json:"descripcion"`
	CategoriaID   int64  `json:"categoria"`
	MarcaID       int64  `json:"marca"`
	ModeloID      int64  `json:"modelo"`
	UbicacionID   int64  `json:"ubicacion"`
	EstadoID      int64  `json:"estado"`
	NumeroSerie   string `json:"numero_serie"`
	CodigoMinvu   string `json:"codigo_minvu"`
	CodigoInterno string `json:"codigo_interno"`
	MAC           string `json:"mac"`
	StockActual   int    `json:"stock_actual" validate:"min=0"`
	StockMinimo   int    `json:"stock_minimo" validate:"min=0"`
}

// UpdateArticuloRequest body para PUT /api/articulos/:id. Campos nil no se tocan.
// El stock no se actualiza por aquí: solo vía movimientos.
type UpdateArticuloRequest struct {
	Nombre        *string `json:"nombre,omitempty"`
	Descripcion   *string `json:"descripcion,omitempty"`
	CategoriaID   *int64  `json:"categoria,omitempty"`
	MarcaID       *int64  `json:"marca,omitempty"`
	ModeloID      *int64  `json:"modelo,omitempty"`
	UbicacionID   *int64  `json:"ubicacion,omitempty"`
	EstadoID      *int64  `json:"estado,omitempty"`
	NumeroSerie   *string `json:"numero_serie,omitempty"`
	CodigoMinvu   *string `json:"codigo_minvu,omitempty"`
	CodigoInterno *string `json:"codigo_interno,omitempty"`
	MAC           *string `json:"mac,omitempty"`
	StockMinimo   *int    `json:"stock_minimo,omitempty"`
}

// ArticuloResponse representación de un artículo en respuestas.
type ArticuloResponse struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   string    `json:"descripcion,omitempty"`
	CategoriaID   int64     `json:"categoria"`
	MarcaID       int64     `json:"marca"`
	ModeloID      int64     `json:"modelo"`
	UbicacionID   int64     `json:"ubicacion"`
	EstadoID      int64     `json:"estado"`
	NumeroSerie   string    `json:"numero_serie,omitempty"`
	CodigoMinvu   string    `json:"codigo_minvu,omitempty"`
	CodigoInterno string    `json:"codigo_interno,omitempty"`
	MAC           string    `json:"mac,omitempty"`
	StockActual   int       `json:"stock_actual"`
	StockMinimo   int       `json:"stock_minimo"`
	StockPrestado int       `json:"stock_prestado"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ArticuloListResponse listado paginado de artículos.
type ArticuloListResponse struct {
	Items []ArticuloResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ── Catálogos (categorías, marcas, modelos, ubicaciones, estados, motivos) ───

// CatalogoRequest body para crear/actualizar una entrada de catálogo.
type CatalogoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=200"`
}

// CatalogoResponse entrada de catálogo en respuestas.
type CatalogoResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// ── Personal ─────────────────────────────────────────────────────────────────

// CreatePersonalRequest body para POST /api/personal (patrón creatable-select).
type CreatePersonalRequest struct {
	CorreoInstitucional string `json:"correo_institucional" validate:"required,email"`
	Nombre              string `json:"nombre"`
	Seccion             string `json:"seccion"`
}

// UpdatePersonalRequest body para PUT /api/personal/:id.
type UpdatePersonalRequest struct {
	CorreoInstitucional *string `json:"correo_institucional,omitempty" validate:"omitempty,email"`
	Nombre              *string `json:"nombre,omitempty"`
	Seccion             *string `json:"seccion,omitempty"`
}

// PersonalResponse representación de una persona en respuestas.
type PersonalResponse struct {
	ID                  int64  `json:"id"`
	CorreoInstitucional string `json:"correo_institucional"`
	Nombre              string `json:"nombre,omitempty"`
	Seccion             string `json:"seccion,omitempty"`
}
