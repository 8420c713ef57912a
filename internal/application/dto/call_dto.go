package dto

import "time"

// CreateCallRequest body para POST /api/calls.
type CreateCallRequest struct {
	Caller      string `json:"caller" validate:"required,max=200"`
	Company     string `json:"company" validate:"required,max=200"`
	Branch      string `json:"branch" validate:"required,max=200"`
	Subject     string `json:"subject" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=alta normal baja"`
	Duration    int    `json:"duration" validate:"omitempty,min=0"`
	Notes       string `json:"notes" validate:"omitempty"`
}

// UpdateCallRequest actualización parcial de una llamada (solo quien la creó).
type UpdateCallRequest struct {
	Caller      *string `json:"caller,omitempty"`
	Company     *string `json:"company,omitempty"`
	Branch      *string `json:"branch,omitempty"`
	Subject     *string `json:"subject,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// CallResponse salida de una llamada.
type CallResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserFullName string    `json:"user_full_name"`
	Caller       string    `json:"caller"`
	Company      string    `json:"company"`
	Branch       string    `json:"branch"`
	Subject      string    `json:"subject"`
	Description  string    `json:"description"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	Duration     int       `json:"duration"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
