package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest body para POST /api/sales (venta de un solo artículo).
type CreateSaleRequest struct {
	InventoryID string          `json:"inventory_id" validate:"required,uuid"`
	CompanyName string          `json:"company_name" validate:"required,max=200"`
	Quantity    int64           `json:"quantity" validate:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"required"`
	Description string          `json:"description" validate:"omitempty"`
}

// BulkSaleItem línea de una venta múltiple.
type BulkSaleItem struct {
	InventoryID string          `json:"inventory_id" validate:"required,uuid"`
	Quantity    int64           `json:"quantity" validate:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"required"`
}

// BulkSaleRequest body para POST /api/sales/bulk. Todas las líneas se
// procesan en una única transacción: o se crean todas las ventas o ninguna.
type BulkSaleRequest struct {
	CompanyID     string         `json:"company_id" validate:"required,uuid"`
	Items         []BulkSaleItem `json:"items" validate:"required,min=1"`
	PaymentMethod string         `json:"payment_method" validate:"required"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            string          `json:"id"`
	InventoryID   string          `json:"inventory_id"`
	UserID        string          `json:"user_id"`
	CompanyID     string          `json:"company_id,omitempty"`
	UserFullName  string          `json:"user_full_name"`
	CompanyName   string          `json:"company_name"`
	SaleDate      time.Time       `json:"sale_date"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Description   string          `json:"description,omitempty"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method,omitempty"`
}

// SaleStatsResponse resumen agregado de ventas.
type SaleStatsResponse struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalTransactions int64           `json:"total_transactions"`
	TotalQuantity     int64           `json:"total_quantity"`
}

// SalesReportRequest body para POST /api/sales/report (PDF por empresa).
// TimeFilter: all | last30days | lastYear | custom (requiere start/end).
type SalesReportRequest struct {
	CompanyName string `json:"company_name" validate:"required"`
	TimeFilter  string `json:"time_filter" validate:"required,oneof=all last30days lastYear custom"`
	StartDate   string `json:"start_date" validate:"omitempty"` // YYYY-MM-DD
	EndDate     string `json:"end_date" validate:"omitempty"`   // YYYY-MM-DD
}
