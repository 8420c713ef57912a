package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para el inventario.
// Usado dentro de transacciones de venta para garantizar consistencia.
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// ventas concurrentes del mismo artículo dentro de una transacción.
	GetByIDForUpdate(id string) (*entity.InventoryItem, error)
	// List devuelve los artículos por fecha de actualización descendente.
	List(limit, offset int) ([]*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	// UpdateQuantity fija el nuevo stock de un artículo.
	UpdateQuantity(id string, quantity int64) error
	Delete(id string) error
}
