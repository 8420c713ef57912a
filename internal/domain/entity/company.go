package entity

import "time"

// Estados de empresa.
const (
	CompanyStatusActive   = "activa"
	CompanyStatusInactive = "inactiva"
)

// Company empresa cliente u objetivo de ventas. El nombre es único.
type Company struct {
	ID            string
	Name          string
	Address       string
	Phone         string
	Email         string
	TaxID         string
	ContactPerson string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
