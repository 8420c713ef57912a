package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// ReportRepository define el puerto de persistencia para Report.
type ReportRepository interface {
	Create(report *entity.Report) error
	GetByID(id string) (*entity.Report, error)
	// ListAll devuelve todos los informes, más recientes primero (admin).
	ListAll() ([]*entity.Report, error)
	// ListByRoles devuelve los informes cuyo rol de autor está en roles,
	// más recientes primero (filtro de jerarquía).
	ListByRoles(roles []entity.Role) ([]*entity.Report, error)
	Update(report *entity.Report) error
	Delete(id string) error
}
