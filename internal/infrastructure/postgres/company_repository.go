package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, address, phone, email, tax_id, contact_person,
		status, created_at, updated_at`

// Create persiste una nueva empresa. El nombre tiene constraint único.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, address, phone, email, tax_id, contact_person,
			status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Address, company.Phone, company.Email,
		company.TaxID, company.ContactPerson, company.Status,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get company by id")
}

// GetByName obtiene una empresa por nombre exacto.
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get company by name")
}

func (r *CompanyRepo) scanOne(row pgx.Row, op string) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.TaxID,
		&c.ContactPerson, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// List lista las empresas ordenadas por nombre.
func (r *CompanyRepo) List() ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.TaxID,
			&c.ContactPerson, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una empresa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, address = $3, phone = $4, email = $5, tax_id = $6,
			contact_person = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Address, company.Phone, company.Email,
		company.TaxID, company.ContactPerson, company.Status, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Delete elimina una empresa por ID.
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
