package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Gestion-api/internal/application/sales"
	"github.com/jhoicas/Gestion-api/internal/application/tasks"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner and tasks.TxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ tasks.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSale inicia una transacción con repos de ventas e inventario atados a la
// tx y hace Commit o Rollback. La fila de venta y el decremento de stock solo
// se hacen visibles juntos.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	inventoryRepo := NewInventoryRepository(tx)

	if err := fn(saleRepo, inventoryRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunTaskAudit inicia una transacción con repos de tarea e historial atados a
// la tx. La mutación de la tarea y su entrada de auditoría se escriben como
// unidad.
func (r *TxRunner) RunTaskAudit(ctx context.Context, fn func(
	taskRepo repository.TaskRepository,
	historyRepo repository.TaskHistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	taskRepo := NewTaskRepository(tx)
	historyRepo := NewTaskHistoryRepository(tx)

	if err := fn(taskRepo, historyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
