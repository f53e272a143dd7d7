package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/vetclinic-pro/internal/application/billing"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/repository"
)

// Ensure TxRunner implements billing.InvoiceTxRunner.
var _ billing.InvoiceTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunInvoice inicia una transacción, ejecuta fn con un InvoiceRepository atado
// a la tx y hace Commit o Rollback. La numeración y la inserción de cabecera +
// líneas ocurren dentro de este callback: cualquier fallo revierte todo.
func (r *TxRunner) RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInvoiceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
