package entity

import "time"

// TaskHistory entrada del historial de una tarea. Es un registro de solo
// inserción: nunca se actualiza ni se borra, ni siquiera cuando la tarea
// se marca como eliminada.
type TaskHistory struct {
	ID            string
	TaskID        string
	Action        string
	UserName      string // nombre visible de quien ejecutó la acción
	CreatorName   string
	PreviousValue *TaskSnapshot // nil en la creación
	NewValue      *TaskSnapshot // nil en el borrado
	CreatedAt     time.Time
}
