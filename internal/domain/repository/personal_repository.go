package repository

import "github.com/sistema-bodega/bodega-api/internal/domain/entity"

// PersonalRepository define el puerto de persistencia para Personal.
type PersonalRepository interface {
	Create(personal *entity.Personal) error
	GetByID(id int64) (*entity.Personal, error)
	GetByCorreo(correo string) (*entity.Personal, error)
	Update(personal *entity.Personal) error
	List() ([]*entity.Personal, error)
	Delete(id int64) error
}
