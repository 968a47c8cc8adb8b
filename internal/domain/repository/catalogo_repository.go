package repository

import "github.com/sistema-bodega/bodega-api/internal/domain/entity"

// CatalogoRepository es el puerto común de las tablas de referencia id/nombre
// (categorías, marcas, modelos, ubicaciones, estados, motivos).
type CatalogoRepository interface {
	Create(item *entity.Catalogo) error
	GetByID(id int64) (*entity.Catalogo, error)
	GetByNombre(nombre string) (*entity.Catalogo, error)
	Update(item *entity.Catalogo) error
	List() ([]*entity.Catalogo, error)
	Delete(id int64) error
}
