package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un artículo de inventario.
const (
	InventoryStatusActive     = "activo"
	InventoryStatusInactive   = "inactivo"
	InventoryStatusOutOfStock = "agotado"
)

// InventoryItem artículo del inventario. Quantity es un contador de stock
// no negativo; solo se decrementa dentro de la transacción de una venta.
type InventoryItem struct {
	ID            string
	Name          string
	Description   string
	Category      string
	Quantity      int64
	Unit          string
	Price         decimal.Decimal
	Status        string
	LastUpdatedBy string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
