package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusPending   = "pendiente"
	SaleStatusConfirmed = "confirmada"
	SaleStatusVoided    = "anulada"
)

// Métodos de pago aceptados.
const (
	PaymentCash     = "efectivo"
	PaymentCard     = "tarjeta"
	PaymentTransfer = "transferencia"
	PaymentCheck    = "cheque"
	PaymentCredit   = "credito"
)

// Sale venta de un artículo de inventario a una empresa. TotalAmount es
// siempre Quantity × UnitPrice en aritmética decimal. La venta y el
// decremento de stock se escriben en la misma transacción.
type Sale struct {
	ID            string
	UserID        string
	InventoryID   string
	CompanyID     string
	UserFullName  string // desnormalizado: vendedor al momento de la venta
	CompanyName   string
	SaleDate      time.Time
	Quantity      int64
	UnitPrice     decimal.Decimal
	TotalAmount   decimal.Decimal
	Description   string
	Status        string
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SaleStats agregados de ventas para el resumen.
type SaleStats struct {
	TotalSales        decimal.Decimal
	TotalTransactions int64
	TotalQuantity     int64
}

// ValidPaymentMethod indica si el método de pago es uno de los aceptados.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentCheck, PaymentCredit:
		return true
	}
	return false
}
