package entity

import "time"

// Prioridades y estados de llamada.
const (
	CallPriorityHigh   = "alta"
	CallPriorityNormal = "normal"
	CallPriorityLow    = "baja"

	CallStatusPending    = "pendiente"
	CallStatusInProgress = "en_curso"
	CallStatusCompleted  = "completada"
)

// Call registro de una llamada atendida por un usuario. Solo quien la creó
// puede modificarla o borrarla.
type Call struct {
	ID           string
	UserID       string
	UserFullName string
	Caller       string
	Company      string
	Branch       string
	Subject      string
	Description  string
	Priority     string
	Status       string
	Duration     int // minutos
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
