package movimiento

import (
	"context"

	"github.com/sistema-bodega/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el ajuste de stock y el
// registro del movimiento se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		articuloRepo repository.ArticuloRepository,
	) error) error
}
