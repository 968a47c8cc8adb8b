package movimiento

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sistema-bodega/bodega-api/internal/application/dto"
	"github.com/sistema-bodega/bodega-api/internal/domain"
	"github.com/sistema-bodega/bodega-api/internal/domain/entity"
	"github.com/sistema-bodega/bodega-api/internal/domain/prestamo"
	"github.com/sistema-bodega/bodega-api/internal/domain/repository"
)

// RegistrarUseCase registra movimientos de stock (Entrada, Salida, Prestamo,
// Regresado) de forma transaccional con bloqueo de fila sobre el artículo.
// Las validaciones de formulario (stock suficiente, cantidad prestada,
// fecha de regreso, motivo) se rechazan antes de cualquier escritura.
type RegistrarUseCase struct {
	txRunner   TxRunner
	motivoRepo repository.CatalogoRepository
}

// NewRegistrarUseCase construye el caso de uso.
func NewRegistrarUseCase(txRunner TxRunner, motivoRepo repository.CatalogoRepository) *RegistrarUseCase {
	return &RegistrarUseCase{txRunner: txRunner, motivoRepo: motivoRepo}
}

// Registrar valida y persiste un movimiento; devuelve el ID asignado.
func (uc *RegistrarUseCase) Registrar(ctx context.Context, in dto.RegistrarMovimientoRequest) (int64, error) {
	if in.Cantidad <= 0 || in.ArticuloID == 0 {
		return 0, domain.ErrInvalidInput
	}
	switch in.TipoMovimiento {
	case entity.MovimientoEntrada, entity.MovimientoSalida:
	case entity.MovimientoPrestamo, entity.MovimientoRegresado:
		if in.PersonalID == 0 {
			return 0, domain.ErrInvalidInput
		}
	default:
		return 0, domain.ErrInvalidInput
	}

	if in.MotivoID == 0 {
		return 0, domain.ErrMotivoRequerido
	}
	motivo, err := uc.motivoRepo.GetByID(in.MotivoID)
	if err != nil {
		return 0, err
	}
	if motivo == nil {
		return 0, domain.ErrMotivoRequerido
	}

	fecha := time.Now()
	if in.Fecha != nil && !in.Fecha.IsZero() {
		fecha = *in.Fecha
	}

	mov := &entity.Movimiento{
		ArticuloID:     in.ArticuloID,
		PersonalID:     in.PersonalID,
		TipoMovimiento: in.TipoMovimiento,
		Cantidad:       in.Cantidad,
		MotivoID:       in.MotivoID,
		Fecha:          fecha,
		TransactionID:  uuid.New().String(),
		CreatedAt:      time.Now(),
	}

	// Transacción: bloquea la fila del artículo, ajusta stock y guarda el
	// movimiento; Commit o Rollback lo maneja el TxRunner.
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		articuloRepo repository.ArticuloRepository,
	) error {
		articulo, err := articuloRepo.GetForUpdate(in.ArticuloID)
		if err != nil {
			return err
		}
		if articulo == nil {
			return domain.ErrNotFound
		}

		switch in.TipoMovimiento {
		case entity.MovimientoEntrada:
			articulo.StockActual += in.Cantidad

		case entity.MovimientoSalida:
			if articulo.StockActual < in.Cantidad {
				return domain.ErrStockInsuficiente
			}
			articulo.StockActual -= in.Cantidad

		case entity.MovimientoPrestamo:
			if articulo.StockActual < in.Cantidad {
				return domain.ErrStockInsuficiente
			}
			articulo.StockActual -= in.Cantidad
			articulo.StockPrestado += in.Cantidad

		case entity.MovimientoRegresado:
			if err := uc.validarRegreso(movRepo, in, fecha); err != nil {
				return err
			}
			if articulo.StockPrestado < in.Cantidad {
				return domain.ErrSinPrestamoAbierto
			}
			articulo.StockPrestado -= in.Cantidad
			articulo.StockActual += in.Cantidad
		}

		if err := articuloRepo.UpdateStock(articulo.ID, articulo.StockActual, articulo.StockPrestado); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return 0, err
	}
	return mov.ID, nil
}

// validarRegreso aplica las reglas de formulario de una devolución sobre el
// flujo de movimientos de la persona, leído dentro de la misma transacción:
//   - máximo 1 unidad por línea (regla de negocio del formulario),
//   - la cantidad no puede exceder el neto prestado de ese artículo,
//   - la fecha no puede ser anterior al préstamo abierto más antiguo.
func (uc *RegistrarUseCase) validarRegreso(
	movRepo repository.MovimientoRepository,
	in dto.RegistrarMovimientoRequest,
	fecha time.Time,
) error {
	if in.Cantidad > 1 {
		return domain.ErrLimiteDevolucion
	}
	movs, err := movRepo.ListPrestamosByPersonal(in.PersonalID)
	if err != nil {
		return err
	}
	if prestamo.CantidadPrestada(movs, in.PersonalID, in.ArticuloID) < in.Cantidad {
		return domain.ErrSinPrestamoAbierto
	}

	// Préstamo abierto más antiguo de ese artículo para esa persona.
	libro := prestamo.Conciliar(movs, prestamo.Referencias{})
	clave := prestamo.Clave{ArticuloID: in.ArticuloID, PersonalID: in.PersonalID}
	for _, abierto := range libro.Abiertos[clave] {
		if abierto.CantidadRestante > 0 {
			if fecha.Before(abierto.PrestadoEn) {
				return domain.ErrFechaRegresoInvalida
			}
			break
		}
	}
	return nil
}

// RegistrarLote registra N líneas secuencialmente, al estilo del formulario
// de préstamos: una escritura por línea, sin rollback transversal. Una línea
// fallida no detiene las siguientes; el resultado reporta el error por línea.
func (uc *RegistrarUseCase) RegistrarLote(ctx context.Context, in dto.RegistrarLoteRequest) *dto.RegistrarLoteResponse {
	resultados := make([]dto.LineaResultado, 0, len(in.Lineas))
	for i, linea := range in.Lineas {
		res := dto.LineaResultado{Indice: i}
		id, err := uc.Registrar(ctx, linea)
		if err != nil {
			res.Error = err.Error()
		} else {
			res.MovimientoID = id
		}
		resultados = append(resultados, res)
	}
	return &dto.RegistrarLoteResponse{Resultados: resultados}
}
