package movimiento

import (
	"github.com/sistema-bodega/bodega-api/internal/application/dto"
	"github.com/sistema-bodega/bodega-api/internal/domain/entity"
	"github.com/sistema-bodega/bodega-api/internal/domain/repository"
)

// ConsultaUseCase consultas de solo lectura sobre el historial de movimientos.
type ConsultaUseCase struct {
	movimientos repository.MovimientoRepository
}

func NewConsultaUseCase(movimientos repository.MovimientoRepository) *ConsultaUseCase {
	return &ConsultaUseCase{movimientos: movimientos}
}

// List lista movimientos paginados, más recientes primero.
func (uc *ConsultaUseCase) List(limit, offset int) (*dto.MovimientoListResponse, error) {
	movs, err := uc.movimientos.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, toMovimientoResponse(m))
	}
	return &dto.MovimientoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetByID obtiene un movimiento. Devuelve (nil, nil) si no existe.
func (uc *ConsultaUseCase) GetByID(id int64) (*dto.MovimientoResponse, error) {
	m, err := uc.movimientos.GetByID(id)
	if err != nil || m == nil {
		return nil, err
	}
	out := toMovimientoResponse(m)
	return &out, nil
}

func toMovimientoResponse(m *entity.Movimiento) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:             m.ID,
		ArticuloID:     m.ArticuloID,
		PersonalID:     m.PersonalID,
		TipoMovimiento: m.TipoMovimiento,
		Cantidad:       m.Cantidad,
		MotivoID:       m.MotivoID,
		Fecha:          m.Fecha,
	}
}
