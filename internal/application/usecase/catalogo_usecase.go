package usecase

import (
	"strings"
	"time"

	"github.com/sistema-bodega/bodega-api/internal/application/dto"
	"github.com/sistema-bodega/bodega-api/internal/domain"
	"github.com/sistema-bodega/bodega-api/internal/domain/entity"
	"github.com/sistema-bodega/bodega-api/internal/domain/repository"
)

// CatalogoUseCase casos de uso CRUD para una tabla de referencia id/nombre.
// Se instancia una vez por catálogo (categorías, marcas, modelos,
// ubicaciones, estados, motivos) con su repositorio correspondiente.
type CatalogoUseCase struct {
	repo repository.CatalogoRepository
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(repo repository.CatalogoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{repo: repo}
}

// Create crea una entrada. Un nombre ya existente (sin distinguir mayúsculas)
// devuelve ErrDuplicate: los catálogos son listas de valores únicos.
func (uc *CatalogoUseCase) Create(in dto.CatalogoRequest) (*dto.CatalogoResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByNombre(nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	item := &entity.Catalogo{Nombre: nombre, CreatedAt: time.Now()}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return &dto.CatalogoResponse{ID: item.ID, Nombre: item.Nombre}, nil
}

// GetByID obtiene una entrada por ID.
func (uc *CatalogoUseCase) GetByID(id int64) (*dto.CatalogoResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return &dto.CatalogoResponse{ID: item.ID, Nombre: item.Nombre}, nil
}

// Update renombra una entrada.
func (uc *CatalogoUseCase) Update(id int64, in dto.CatalogoRequest) (*dto.CatalogoResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	item.Nombre = strings.TrimSpace(in.Nombre)
	if item.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return &dto.CatalogoResponse{ID: item.ID, Nombre: item.Nombre}, nil
}

// List lista todas las entradas del catálogo.
func (uc *CatalogoUseCase) List() ([]dto.CatalogoResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogoResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.CatalogoResponse{ID: item.ID, Nombre: item.Nombre})
	}
	return out, nil
}

// Delete elimina una entrada por ID.
func (uc *CatalogoUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}
