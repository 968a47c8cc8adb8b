package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sistema-bodega/bodega-api/internal/application/movimiento"
	"github.com/sistema-bodega/bodega-api/internal/domain/repository"
)

var _ movimiento.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción pgx, entregando
// repositorios atados a la tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre una transacción, invoca fn con repos transaccionales y hace
// commit si fn retorna nil; cualquier error revierte todo.
func (t *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	articuloRepo repository.ArticuloRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewMovimientoRepository(tx), NewArticuloRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
