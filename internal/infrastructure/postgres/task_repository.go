package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación de TaskRepository sobre PostgreSQL (usable con pool o tx).
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador de tareas. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

const taskColumns = `id, title, description, priority, assignee_name, assigned_user_id,
		creator_id, due_date, status, is_deleted, created_at, updated_at`

// Create persiste una nueva tarea.
func (r *TaskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, priority, assignee_name, assigned_user_id,
			creator_id, due_date, status, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.Title, task.Description, task.Priority, task.AssigneeName,
		task.AssignedUserID, task.CreatorID, task.DueDate, task.Status,
		task.IsDeleted, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID, incluidas las marcadas como eliminadas.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	var t entity.Task
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Priority, &t.AssigneeName,
		&t.AssignedUserID, &t.CreatorID, &t.DueDate, &t.Status,
		&t.IsDeleted, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}
	return &t, nil
}

// List lista tareas no eliminadas, más recientes primero.
func (r *TaskRepo) List(limit, offset int) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks WHERE is_deleted = false
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.Priority, &t.AssigneeName,
			&t.AssignedUserID, &t.CreatorID, &t.DueDate, &t.Status,
			&t.IsDeleted, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una tarea (incluye el borrado lógico vía is_deleted).
func (r *TaskRepo) Update(task *entity.Task) error {
	query := `
		UPDATE tasks SET title = $2, description = $3, priority = $4, assignee_name = $5,
			assigned_user_id = $6, due_date = $7, status = $8, is_deleted = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.Title, task.Description, task.Priority, task.AssigneeName,
		task.AssignedUserID, task.DueDate, task.Status, task.IsDeleted, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}
