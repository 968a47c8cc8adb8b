package repository

import "github.com/sistema-bodega/bodega-api/internal/domain/entity"

// ArticuloRepository define el puerto de persistencia para Articulo (DIP).
type ArticuloRepository interface {
	Create(articulo *entity.Articulo) error
	GetByID(id int64) (*entity.Articulo, error)
	GetForUpdate(id int64) (*entity.Articulo, error)
	Update(articulo *entity.Articulo) error
	UpdateStock(id int64, stockActual, stockPrestado int) error
	List(limit, offset int) ([]*entity.Articulo, error)
	ListAll() ([]*entity.Articulo, error)
	Delete(id int64) error
}
