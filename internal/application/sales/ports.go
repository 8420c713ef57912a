package sales

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La fila de venta y el decremento de stock
// nunca son visibles por separado.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}

// ReportPDFGenerator puerto de render del informe de ventas por empresa.
// Recibe datos ya filtrados y autorizados; no consulta nada.
type ReportPDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, companyName, periodLabel string, sales []*entity.Sale, itemNames map[string]string) ([]byte, error)
}
