package dto

import "time"

// CreateReportRequest body para POST /api/reports.
type CreateReportRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// UpdateReportRequest actualización parcial de un informe (solo el autor).
type UpdateReportRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// UpdateReportStatusRequest body para PATCH /api/reports/:id/status.
type UpdateReportStatusRequest struct {
	NewStatus string `json:"new_status" validate:"required"`
}

// ReportResponse salida de un informe.
type ReportResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Status       string    `json:"status"`
	StatusLabel  string    `json:"status_label"`
	ReportDate   time.Time `json:"report_date"`
	UserRole     string    `json:"user_role"`
	UserFullName string    `json:"user_full_name"`
	CreatedAt    time.Time `json:"created_at"`
}
