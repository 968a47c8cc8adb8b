package usecase

import (
	"time"

	"github.com/sistema-bodega/bodega-api/internal/application/dto"
	"github.com/sistema-bodega/bodega-api/internal/domain/entity"
	"github.com/sistema-bodega/bodega-api/internal/domain/repository"
)

// ArticuloUseCase casos de uso CRUD para artículos.
type ArticuloUseCase struct {
	repo repository.ArticuloRepository
}

// NewArticuloUseCase construye el caso de uso.
func NewArticuloUseCase(repo repository.ArticuloRepository) *ArticuloUseCase {
	return &ArticuloUseCase{repo: repo}
}

// Create crea un nuevo artículo. El stock prestado siempre inicia en cero.
func (uc *ArticuloUseCase) Create(in dto.CreateArticuloRequest) (*dto.ArticuloResponse, error) {
	now := time.Now()
	articulo := &entity.Articulo{
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		CategoriaID:   in.CategoriaID,
		MarcaID:       in.MarcaID,
		ModeloID:      in.ModeloID,
		UbicacionID:   in.UbicacionID,
		EstadoID:      in.EstadoID,
		NumeroSerie:   in.NumeroSerie,
		CodigoMinvu:   in.CodigoMinvu,
		CodigoInterno: in.CodigoInterno,
		MAC:           in.MAC,
		StockActual:   in.StockActual,
		StockMinimo:   in.StockMinimo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(articulo); err != nil {
		return nil, err
	}
	return toArticuloResponse(articulo), nil
}

// GetByID obtiene un artículo por ID.
func (uc *ArticuloUseCase) GetByID(id int64) (*dto.ArticuloResponse, error) {
	articulo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, nil
	}
	return toArticuloResponse(articulo), nil
}

// Update actualiza los campos presentes. El stock no se toca: solo vía movimientos.
func (uc *ArticuloUseCase) Update(id int64, in dto.UpdateArticuloRequest) (*dto.ArticuloResponse, error) {
	articulo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		articulo.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		articulo.Descripcion = *in.Descripcion
	}
	if in.CategoriaID != nil {
		articulo.CategoriaID = *in.CategoriaID
	}
	if in.MarcaID != nil {
		articulo.MarcaID = *in.MarcaID
	}
	if in.ModeloID != nil {
		articulo.ModeloID = *in.ModeloID
	}
	if in.UbicacionID != nil {
		articulo.UbicacionID = *in.UbicacionID
	}
	if in.EstadoID != nil {
		articulo.EstadoID = *in.EstadoID
	}
	if in.NumeroSerie != nil {
		articulo.NumeroSerie = *in.NumeroSerie
	}
	if in.CodigoMinvu != nil {
		articulo.CodigoMinvu = *in.CodigoMinvu
	}
	if in.CodigoInterno != nil {
		articulo.CodigoInterno = *in.CodigoInterno
	}
	if in.MAC != nil {
		articulo.MAC = *in.MAC
	}
	if in.StockMinimo != nil {
		articulo.StockMinimo = *in.StockMinimo
	}
	articulo.UpdatedAt = time.Now()
	if err := uc.repo.Update(articulo); err != nil {
		return nil, err
	}
	return toArticuloResponse(articulo), nil
}

// List lista artículos con paginación.
func (uc *ArticuloUseCase) List(limit, offset int) (*dto.ArticuloListResponse, error) {
	articulos, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticuloResponse, 0, len(articulos))
	for _, a := range articulos {
		items = append(items, *toArticuloResponse(a))
	}
	return &dto.ArticuloListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un artículo por ID.
func (uc *ArticuloUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toArticuloResponse(a *entity.Articulo) *dto.ArticuloResponse {
	return &dto.ArticuloResponse{
		ID:            a.ID,
		Nombre:        a.Nombre,
		Descripcion:   a.Descripcion,
		CategoriaID:   a.CategoriaID,
		MarcaID:       a.MarcaID,
		ModeloID:      a.ModeloID,
		UbicacionID:   a.UbicacionID,
		EstadoID:      a.EstadoID,
		NumeroSerie:   a.NumeroSerie,
		CodigoMinvu:   a.CodigoMinvu,
		CodigoInterno: a.CodigoInterno,
		MAC:           a.MAC,
		StockActual:   a.StockActual,
		StockMinimo:   a.StockMinimo,
		StockPrestado: a.StockPrestado,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
