package tasks

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La actualización de la tarea y su entrada de
// historial se escriben juntas o no se escriben.
type TxRunner interface {
	RunTaskAudit(ctx context.Context, fn func(
		taskRepo repository.TaskRepository,
		historyRepo repository.TaskHistoryRepository,
	) error) error
}
