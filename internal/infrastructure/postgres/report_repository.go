package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación de ReportRepository sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de informes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

const reportColumns = `id, user_id, title, content, status, report_date, user_role,
		user_full_name, created_at, updated_at`

// Create persiste un nuevo informe.
func (r *ReportRepo) Create(report *entity.Report) error {
	query := `
		INSERT INTO reports (id, user_id, title, content, status, report_date, user_role,
			user_full_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.UserID, report.Title, report.Content, report.Status,
		report.ReportDate, report.UserRole, report.UserFullName,
		report.CreatedAt, report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetByID obtiene un informe por ID.
func (r *ReportRepo) GetByID(id string) (*entity.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`
	var rep entity.Report
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rep.ID, &rep.UserID, &rep.Title, &rep.Content, &rep.Status, &rep.ReportDate,
		&rep.UserRole, &rep.UserFullName, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report by id: %w", err)
	}
	return &rep, nil
}

// ListAll lista todos los informes, más recientes primero.
func (r *ReportRepo) ListAll() ([]*entity.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// ListByRoles lista los informes cuyo rol de autor está en roles, más
// recientes primero. Implementa la visibilidad por jerarquía.
func (r *ReportRepo) ListByRoles(roles []entity.Role) ([]*entity.Report, error) {
	values := make([]string, len(roles))
	for i, role := range roles {
		values[i] = string(role)
	}
	query := `SELECT ` + reportColumns + `
		FROM reports WHERE user_role = ANY($1)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, values)
	if err != nil {
		return nil, fmt.Errorf("list reports by roles: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *ReportRepo) collect(rows pgx.Rows) ([]*entity.Report, error) {
	var list []*entity.Report
	for rows.Next() {
		var rep entity.Report
		if err := rows.Scan(
			&rep.ID, &rep.UserID, &rep.Title, &rep.Content, &rep.Status, &rep.ReportDate,
			&rep.UserRole, &rep.UserFullName, &rep.CreatedAt, &rep.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}

// Update actualiza un informe.
func (r *ReportRepo) Update(report *entity.Report) error {
	query := `
		UPDATE reports SET title = $2, content = $3, status = $4, report_date = $5,
			updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.Title, report.Content, report.Status, report.ReportDate,
		report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	return nil
}

// Delete elimina un informe por ID.
func (r *ReportRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}
