package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.TaskHistoryRepository = (*TaskHistoryRepo)(nil)

// TaskHistoryRepo implementación de TaskHistoryRepository sobre PostgreSQL.
// Las instantáneas se guardan como JSON en columnas de texto.
type TaskHistoryRepo struct {
	q Querier
}

// NewTaskHistoryRepository construye el adaptador del historial. Pasar pool o tx.
func NewTaskHistoryRepository(q Querier) *TaskHistoryRepo {
	return &TaskHistoryRepo{q: q}
}

// Create persiste una entrada de historial. Solo inserción.
func (r *TaskHistoryRepo) Create(entry *entity.TaskHistory) error {
	prev, err := encodeSnapshot(entry.PreviousValue)
	if err != nil {
		return fmt.Errorf("encode previous snapshot: %w", err)
	}
	next, err := encodeSnapshot(entry.NewValue)
	if err != nil {
		return fmt.Errorf("encode new snapshot: %w", err)
	}
	query := `
		INSERT INTO task_history (id, task_id, action, user_name, creator_name,
			previous_value, new_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		entry.ID, entry.TaskID, entry.Action, entry.UserName, entry.CreatorName,
		prev, next, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task history: %w", err)
	}
	return nil
}

// ListByTask devuelve las entradas de una tarea, más recientes primero.
func (r *TaskHistoryRepo) ListByTask(taskID string) ([]*entity.TaskHistory, error) {
	query := `
		SELECT id, task_id, action, user_name, creator_name, previous_value, new_value, created_at
		FROM task_history WHERE task_id = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, taskID)
	if err != nil {
		return nil, fmt.Errorf("list task history: %w", err)
	}
	defer rows.Close()
	var list []*entity.TaskHistory
	for rows.Next() {
		var h entity.TaskHistory
		var prev, next *string
		if err := rows.Scan(
			&h.ID, &h.TaskID, &h.Action, &h.UserName, &h.CreatorName,
			&prev, &next, &h.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan task history: %w", err)
		}
		if h.PreviousValue, err = decodeSnapshot(prev); err != nil {
			return nil, fmt.Errorf("decode previous snapshot: %w", err)
		}
		if h.NewValue, err = decodeSnapshot(next); err != nil {
			return nil, fmt.Errorf("decode new snapshot: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

func encodeSnapshot(s *entity.TaskSnapshot) (*string, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	str := string(b)
	return &str, nil
}

func decodeSnapshot(raw *string) (*entity.TaskSnapshot, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var s entity.TaskSnapshot
	if err := json.Unmarshal([]byte(*raw), &s); err != nil {
		return nil, err
	}
	return &s, nil
}
