package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest body para POST /api/inventory.
type CreateInventoryRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"omitempty"`
	Category    string          `json:"category" validate:"required,max=100"`
	Quantity    int64           `json:"quantity" validate:"min=0"`
	Unit        string          `json:"unit" validate:"required,max=30"`
	Price       decimal.Decimal `json:"price" validate:"required"`
}

// UpdateInventoryRequest actualización parcial de un artículo.
type UpdateInventoryRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Quantity    *int64           `json:"quantity,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

// InventoryItemResponse salida de un artículo de inventario.
type InventoryItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Category      string          `json:"category"`
	Quantity      int64           `json:"quantity"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	Status        string          `json:"status"`
	LastUpdatedBy string          `json:"last_updated_by,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
