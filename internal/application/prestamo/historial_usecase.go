// Package prestamo (aplicación) orquesta el libro de préstamos: carga
// movimientos y tablas de referencia, corre el conciliador de dominio y
// expone el historial y el índice de pendientes a la capa HTTP.
package prestamo

import (
	"github.com/sistema-bodega/bodega-api/internal/application/dto"
	"github.com/sistema-bodega/bodega-api/internal/domain/entity"
	"github.com/sistema-bodega/bodega-api/internal/domain/prestamo"
	"github.com/sistema-bodega/bodega-api/internal/domain/repository"
)

// HistorialUseCase deriva el historial conciliado y el índice de artículos
// prestados. Todo se reconstruye desde cero en cada consulta: el libro es
// una proyección derivada, nunca estado persistido.
type HistorialUseCase struct {
	movimientos repository.MovimientoRepository
	articulos   repository.ArticuloRepository
	personal    repository.PersonalRepository
	marcas      repository.CatalogoRepository
	modelos     repository.CatalogoRepository
}

// NewHistorialUseCase construye el caso de uso.
func NewHistorialUseCase(
	movimientos repository.MovimientoRepository,
	articulos repository.ArticuloRepository,
	personal repository.PersonalRepository,
	marcas repository.CatalogoRepository,
	modelos repository.CatalogoRepository,
) *HistorialUseCase {
	return &HistorialUseCase{
		movimientos: movimientos,
		articulos:   articulos,
		personal:    personal,
		marcas:      marcas,
		modelos:     modelos,
	}
}

// Historial carga el flujo Prestamo/Regresado completo, lo concilia y
// devuelve las filas listas para mostrar.
func (uc *HistorialUseCase) Historial() (*dto.HistorialResponse, error) {
	movs, err := uc.movimientos.ListPrestamos()
	if err != nil {
		return nil, err
	}
	refs, err := uc.cargarReferencias()
	if err != nil {
		return nil, err
	}
	res := prestamo.Conciliar(movs, refs)
	return &dto.HistorialResponse{Filas: res.Historial}, nil
}

// Pendientes devuelve lo que una persona mantiene prestado por artículo,
// calculado por suma neta sobre el flujo crudo (vista independiente del
// emparejamiento del historial).
func (uc *HistorialUseCase) Pendientes(personalID int64) (*dto.PendientesResponse, error) {
	movs, err := uc.movimientos.ListPrestamosByPersonal(personalID)
	if err != nil {
		return nil, err
	}
	return &dto.PendientesResponse{
		PersonalID: personalID,
		Articulos:  prestamo.ArticulosPrestados(movs, personalID),
	}, nil
}

// cargarReferencias arma las tablas de consulta del normalizador. Las listas
// de referencia son chicas (catálogos de bodega), se cargan completas.
func (uc *HistorialUseCase) cargarReferencias() (prestamo.Referencias, error) {
	refs := prestamo.Referencias{
		Articulos: make(map[int64]*entity.Articulo),
		Personal:  make(map[int64]*entity.Personal),
		Marcas:    make(map[int64]string),
		Modelos:   make(map[int64]string),
	}

	articulos, err := uc.articulos.ListAll()
	if err != nil {
		return refs, err
	}
	for _, a := range articulos {
		refs.Articulos[a.ID] = a
	}

	personas, err := uc.personal.List()
	if err != nil {
		return refs, err
	}
	for _, p := range personas {
		refs.Personal[p.ID] = p
	}

	marcas, err := uc.marcas.List()
	if err != nil {
		return refs, err
	}
	for _, m := range marcas {
		refs.Marcas[m.ID] = m.Nombre
	}

	modelos, err := uc.modelos.List()
	if err != nil {
		return refs, err
	}
	for _, m := range modelos {
		refs.Modelos[m.ID] = m.Nombre
	}

	return refs, nil
}
