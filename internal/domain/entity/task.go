package entity

import "time"

// TaskStatus estado de una tarea dentro del tablero.
type TaskStatus string

const (
	TaskBacklog    TaskStatus = "backlog"
	TaskInProgress TaskStatus = "inProgress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
)

// Prioridades de tarea.
const (
	TaskPriorityHigh   = "alta"
	TaskPriorityMedium = "media"
	TaskPriorityLow    = "baja"
)

// Task tarea asignada a un usuario. El borrado es lógico (IsDeleted):
// la fila nunca se elimina y su historial sigue siendo consultable.
type Task struct {
	ID             string
	Title          string
	Description    string
	Priority       string
	AssigneeName   string // nombre visible del asignado, desnormalizado
	AssignedUserID string
	CreatorID      string
	DueDate        time.Time
	Status         TaskStatus
	IsDeleted      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TaskSnapshot copia tipada del estado de una tarea, tal como se guarda en el
// historial (serializada a JSON en la columna de texto y decodificada al leer).
type TaskSnapshot struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Priority       string     `json:"priority"`
	AssigneeName   string     `json:"assignee_name"`
	AssignedUserID string     `json:"assigned_user_id"`
	CreatorID      string     `json:"creator_id"`
	DueDate        time.Time  `json:"due_date"`
	Status         TaskStatus `json:"status"`
	IsDeleted      bool       `json:"is_deleted"`
}

// Snapshot captura el estado actual de la tarea para el historial.
func (t *Task) Snapshot() *TaskSnapshot {
	return &TaskSnapshot{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Priority:       t.Priority,
		AssigneeName:   t.AssigneeName,
		AssignedUserID: t.AssignedUserID,
		CreatorID:      t.CreatorID,
		DueDate:        t.DueDate,
		Status:         t.Status,
		IsDeleted:      t.IsDeleted,
	}
}
