package entity

import "time"

// ReportStatus estado del flujo de aprobación de un informe.
type ReportStatus string

const (
	ReportDraft     ReportStatus = "borrador"
	ReportSubmitted ReportStatus = "enviado"
	ReportReviewed  ReportStatus = "revisado"
	ReportApproved  ReportStatus = "aprobado"
	ReportRejected  ReportStatus = "rechazado"
)

// Report informe escrito por un usuario. UserRole y UserFullName se capturan
// al crearlo: el filtrado por jerarquía de roles usa el rol del momento de la
// creación, no el rol actual del autor.
type Report struct {
	ID           string
	UserID       string
	Title        string
	Content      string
	Status       ReportStatus
	ReportDate   time.Time
	UserRole     Role
	UserFullName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
