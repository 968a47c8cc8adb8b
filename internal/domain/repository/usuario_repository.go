package repository

import "github.com/sistema-bodega/bodega-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id int64) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	List() ([]*entity.Usuario, error)
	Delete(id int64) error
}
