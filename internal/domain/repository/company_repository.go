package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
	// List devuelve las empresas ordenadas por nombre.
	List() ([]*entity.Company, error)
	Update(company *entity.Company) error
	Delete(id string) error
}
