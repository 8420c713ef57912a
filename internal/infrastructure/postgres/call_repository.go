package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.CallRepository = (*CallRepo)(nil)

// CallRepo implementación de CallRepository sobre PostgreSQL.
type CallRepo struct {
	q Querier
}

// NewCallRepository construye el adaptador de llamadas.
func NewCallRepository(q Querier) *CallRepo {
	return &CallRepo{q: q}
}

const callColumns = `id, user_id, user_full_name, caller, company, branch, subject,
		description, priority, status, duration, notes, created_at, updated_at`

// Create persiste una nueva llamada.
func (r *CallRepo) Create(call *entity.Call) error {
	query := `
		INSERT INTO calls (id, user_id, user_full_name, caller, company, branch, subject,
			description, priority, status, duration, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		call.ID, call.UserID, call.UserFullName, call.Caller, call.Company, call.Branch,
		call.Subject, call.Description, call.Priority, call.Status, call.Duration,
		call.Notes, call.CreatedAt, call.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert call: %w", err)
	}
	return nil
}

// GetByID obtiene una llamada por ID.
func (r *CallRepo) GetByID(id string) (*entity.Call, error) {
	query := `SELECT ` + callColumns + ` FROM calls WHERE id = $1`
	var c entity.Call
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.UserID, &c.UserFullName, &c.Caller, &c.Company, &c.Branch,
		&c.Subject, &c.Description, &c.Priority, &c.Status, &c.Duration,
		&c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get call by id: %w", err)
	}
	return &c, nil
}

// List lista llamadas, más recientes primero.
func (r *CallRepo) List(limit, offset int) ([]*entity.Call, error) {
	query := `SELECT ` + callColumns + ` FROM calls ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list calls: %w", err)
	}
	defer rows.Close()
	var list []*entity.Call
	for rows.Next() {
		var c entity.Call
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.UserFullName, &c.Caller, &c.Company, &c.Branch,
			&c.Subject, &c.Description, &c.Priority, &c.Status, &c.Duration,
			&c.Notes, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan call: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una llamada.
func (r *CallRepo) Update(call *entity.Call) error {
	query := `
		UPDATE calls SET caller = $2, company = $3, branch = $4, subject = $5,
			description = $6, priority = $7, status = $8, duration = $9, notes = $10,
			updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		call.ID, call.Caller, call.Company, call.Branch, call.Subject,
		call.Description, call.Priority, call.Status, call.Duration, call.Notes,
		call.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update call: %w", err)
	}
	return nil
}

// Delete elimina una llamada por ID.
func (r *CallRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM calls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete call: %w", err)
	}
	return nil
}
