package dto

import "time"

// CreateCompanyRequest body para POST /api/companies.
type CreateCompanyRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	Address       string `json:"address" validate:"omitempty"`
	Phone         string `json:"phone" validate:"omitempty,max=30"`
	Email         string `json:"email" validate:"omitempty,email"`
	TaxID         string `json:"tax_id" validate:"omitempty,max=50"`
	ContactPerson string `json:"contact_person" validate:"omitempty,max=200"`
}

// UpdateCompanyRequest actualización parcial de una empresa.
type UpdateCompanyRequest struct {
	Name          *string `json:"name,omitempty"`
	Address       *string `json:"address,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	TaxID         *string `json:"tax_id,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	TaxID         string    `json:"tax_id,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
