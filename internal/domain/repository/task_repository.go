package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(task *entity.Task) error
	// GetByID devuelve la tarea aunque esté marcada como eliminada; el listado
	// por defecto es el que excluye los borrados lógicos.
	GetByID(id string) (*entity.Task, error)
	// List devuelve las tareas no eliminadas, más recientes primero.
	List(limit, offset int) ([]*entity.Task, error)
	Update(task *entity.Task) error
}

// TaskHistoryRepository define el puerto del historial de tareas.
// Solo inserción y lectura: el historial nunca se modifica ni se borra.
type TaskHistoryRepository interface {
	Create(entry *entity.TaskHistory) error
	// ListByTask devuelve las entradas más recientes primero, con las
	// instantáneas ya decodificadas.
	ListByTask(taskID string) ([]*entity.TaskHistory, error)
}
