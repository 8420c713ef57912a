package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// CompanyUseCase gestión de empresas. El nombre es único.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// List devuelve las empresas ordenadas por nombre.
func (uc *CompanyUseCase) List() ([]*dto.CompanyResponse, error) {
	companies, err := uc.companyRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, companyToResponse(c))
	}
	return out, nil
}

// Get devuelve una empresa por id.
func (uc *CompanyUseCase) Get(id string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return companyToResponse(company), nil
}

// Create registra una empresa; nombre repetido devuelve ErrDuplicate.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	company := &entity.Company{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Address:       in.Address,
		Phone:         in.Phone,
		Email:         in.Email,
		TaxID:         in.TaxID,
		ContactPerson: in.ContactPerson,
		Status:        entity.CompanyStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// Update aplica los campos presentes del request.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		company.Name = *in.Name
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.TaxID != nil {
		company.TaxID = *in.TaxID
	}
	if in.ContactPerson != nil {
		company.ContactPerson = *in.ContactPerson
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.CompanyStatusActive, entity.CompanyStatusInactive:
			company.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	company.UpdatedAt = time.Now()

	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// Delete elimina la empresa.
func (uc *CompanyUseCase) Delete(id string) error {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.companyRepo.Delete(id)
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		Address:       c.Address,
		Phone:         c.Phone,
		Email:         c.Email,
		TaxID:         c.TaxID,
		ContactPerson: c.ContactPerson,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
	}
}
