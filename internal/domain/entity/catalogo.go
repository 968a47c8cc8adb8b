package entity

import "time"

// Catalogo es la forma común de las tablas de referencia simples de la bodega:
// categorías, marcas, modelos, ubicaciones, estados y motivos. Todas son
// pares id/nombre administrados desde los modales de administración.
type Catalogo struct {
	ID        int64
	Nombre    string
	CreatedAt time.Time
}

// Nombres lógicos de catálogo, usados por repositorios y rutas.
const (
	CatalogoCategorias  = "categorias"
	CatalogoMarcas      = "marcas"
	CatalogoModelos     = "modelos"
	CatalogoUbicaciones = "ubicaciones"
	CatalogoEstados     = "estados"
	CatalogoMotivos     = "motivos"
)
