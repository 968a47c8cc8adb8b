package usecase

import (
	"strings"
	"time"

	"github.com/sistema-bodega/bodega-api/internal/application/dto"
	"github.com/sistema-bodega/bodega-api/internal/domain"
	"github.com/sistema-bodega/bodega-api/internal/domain/entity"
	"github.com/sistema-bodega/bodega-api/internal/domain/repository"
)

// PersonalUseCase casos de uso CRUD para el personal de la institución.
type PersonalUseCase struct {
	repo repository.PersonalRepository
}

// NewPersonalUseCase construye el caso de uso.
func NewPersonalUseCase(repo repository.PersonalRepository) *PersonalUseCase {
	return &PersonalUseCase{repo: repo}
}

// Create registra una persona. El correo institucional es la identidad:
// uno repetido devuelve ErrDuplicate (el selector deduplica por correo).
func (uc *PersonalUseCase) Create(in dto.CreatePersonalRequest) (*dto.PersonalResponse, error) {
	correo := strings.TrimSpace(strings.ToLower(in.CorreoInstitucional))
	if correo == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByCorreo(correo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	p := &entity.Personal{
		CorreoInstitucional: correo,
		Nombre:              strings.TrimSpace(in.Nombre),
		Seccion:             strings.TrimSpace(in.Seccion),
		CreatedAt:           time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPersonalResponse(p), nil
}

// GetByID obtiene una persona por ID.
func (uc *PersonalUseCase) GetByID(id int64) (*dto.PersonalResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPersonalResponse(p), nil
}

// Update actualiza los campos presentes.
func (uc *PersonalUseCase) Update(id int64, in dto.UpdatePersonalRequest) (*dto.PersonalResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.CorreoInstitucional != nil {
		p.CorreoInstitucional = strings.TrimSpace(strings.ToLower(*in.CorreoInstitucional))
	}
	if in.Nombre != nil {
		p.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Seccion != nil {
		p.Seccion = strings.TrimSpace(*in.Seccion)
	}
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toPersonalResponse(p), nil
}

// List lista todo el personal.
func (uc *PersonalUseCase) List() ([]dto.PersonalResponse, error) {
	personas, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PersonalResponse, 0, len(personas))
	for _, p := range personas {
		out = append(out, *toPersonalResponse(p))
	}
	return out, nil
}

// Delete elimina una persona por ID.
func (uc *PersonalUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toPersonalResponse(p *entity.Personal) *dto.PersonalResponse {
	return &dto.PersonalResponse{
		ID:                  p.ID,
		CorreoInstitucional: p.CorreoInstitucional,
		Nombre:              p.Nombre,
		Seccion:             p.Seccion,
	}
}
