package dto

import "time"

// CreateTaskRequest body para POST /api/tasks.
type CreateTaskRequest struct {
	Title          string `json:"title" validate:"required,max=200"`
	Description    string `json:"description" validate:"required"`
	Priority       string `json:"priority" validate:"omitempty,oneof=alta media baja"`
	AssignedUserID string `json:"assigned_user_id" validate:"required,uuid"`
	CreatorID      string `json:"creator_id" validate:"required,uuid"`
	DueDate        string `json:"due_date" validate:"required"` // YYYY-MM-DD
}

// UpdateTaskRequest actualización parcial de una tarea: el caller envía solo
// los campos que quiere cambiar, como punteros con nombre — nunca un mapa
// arbitrario. Status viaja solo y excluye al resto de campos mutables.
type UpdateTaskRequest struct {
	Status      *string `json:"status,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"` // YYYY-MM-DD
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Priority       string    `json:"priority"`
	AssigneeName   string    `json:"assignee_name"`
	AssignedUserID string    `json:"assigned_user_id"`
	CreatorID      string    `json:"creator_id"`
	DueDate        time.Time `json:"due_date"`
	Status         string    `json:"status"`
	StatusLabel    string    `json:"status_label"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TaskSnapshotDTO instantánea de tarea dentro de una entrada de historial.
type TaskSnapshotDTO struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Priority       string    `json:"priority"`
	AssigneeName   string    `json:"assignee_name"`
	AssignedUserID string    `json:"assigned_user_id"`
	DueDate        time.Time `json:"due_date"`
	Status         string    `json:"status"`
}

// TaskHistoryResponse entrada de historial con instantáneas estructuradas.
type TaskHistoryResponse struct {
	ID            string           `json:"id"`
	TaskID        string           `json:"task_id"`
	Action        string           `json:"action"`
	UserName      string           `json:"user_name"`
	CreatorName   string           `json:"creator_name"`
	PreviousValue *TaskSnapshotDTO `json:"previous_value,omitempty"`
	NewValue      *TaskSnapshotDTO `json:"new_value,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}
