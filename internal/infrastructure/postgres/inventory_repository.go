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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, name, description, category, quantity, unit, price,
		status, last_updated_by, created_at, updated_at`

// Create persiste un nuevo artículo.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, name, description, category, quantity, unit, price,
			status, last_updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Category, item.Quantity,
		item.Unit, item.Price, item.Status, item.LastUpdatedBy,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get inventory item")
}

// GetByIDForUpdate obtiene un artículo y bloquea la fila (SELECT FOR UPDATE).
// Serializa las ventas concurrentes del mismo artículo dentro de una tx.
func (r *InventoryRepo) GetByIDForUpdate(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get inventory item for update")
}

func (r *InventoryRepo) scanOne(row pgx.Row, op string) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(
		&it.ID, &it.Name, &it.Description, &it.Category, &it.Quantity, &it.Unit,
		&it.Price, &it.Status, &it.LastUpdatedBy, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}

// List lista artículos por fecha de actualización descendente.
func (r *InventoryRepo) List(limit, offset int) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + `
		FROM inventory_items ORDER BY updated_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Description, &it.Category, &it.Quantity, &it.Unit,
			&it.Price, &it.Status, &it.LastUpdatedBy, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza un artículo.
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET name = $2, description = $3, category = $4, quantity = $5,
			unit = $6, price = $7, status = $8, last_updated_by = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Category, item.Quantity,
		item.Unit, item.Price, item.Status, item.LastUpdatedBy, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// UpdateQuantity fija el nuevo stock de un artículo.
func (r *InventoryRepo) UpdateQuantity(id string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET quantity = $2, updated_at = $3 WHERE id = $1`,
		id, quantity, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}

// Delete elimina un artículo por ID.
func (r *InventoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}
