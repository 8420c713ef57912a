package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, user_id, inventory_id, company_id, user_full_name, company_name,
		sale_date, quantity, unit_price, total_amount, description, status,
		payment_method, created_at, updated_at`

// Create persiste una nueva venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, user_id, inventory_id, company_id, user_full_name, company_name,
			sale_date, quantity, unit_price, total_amount, description, status,
			payment_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.UserID, sale.InventoryID, sale.CompanyID, sale.UserFullName,
		sale.CompanyName, sale.SaleDate, sale.Quantity, sale.UnitPrice, sale.TotalAmount,
		sale.Description, sale.Status, sale.PaymentMethod, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.UserID, &s.InventoryID, &s.CompanyID, &s.UserFullName, &s.CompanyName,
		&s.SaleDate, &s.Quantity, &s.UnitPrice, &s.TotalAmount, &s.Description,
		&s.Status, &s.PaymentMethod, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale by id: %w", err)
	}
	return &s, nil
}

// List lista ventas por fecha de venta descendente.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY sale_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// ListByCompanyAndPeriod filtra ventas por nombre de empresa y rango de fechas
// (inclusive). Usado para el informe de ventas en PDF.
func (r *SaleRepo) ListByCompanyAndPeriod(companyName string, from, to *time.Time) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE company_name = $1`
	args := []any{companyName}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND sale_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND sale_date <= $%d", len(args))
	}
	query += " ORDER BY sale_date DESC"
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales by company and period: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// Stats agregados globales de ventas.
func (r *SaleRepo) Stats() (*entity.SaleStats, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*), COALESCE(SUM(quantity), 0)
		FROM sales`
	var st entity.SaleStats
	err := r.q.QueryRow(context.Background(), query).Scan(
		&st.TotalSales, &st.TotalTransactions, &st.TotalQuantity,
	)
	if err != nil {
		return nil, fmt.Errorf("sale stats: %w", err)
	}
	return &st, nil
}

func (r *SaleRepo) collect(rows pgx.Rows) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.InventoryID, &s.CompanyID, &s.UserFullName, &s.CompanyName,
			&s.SaleDate, &s.Quantity, &s.UnitPrice, &s.TotalAmount, &s.Description,
			&s.Status, &s.PaymentMethod, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
