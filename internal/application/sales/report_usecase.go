package sales

import (
	"context"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// SalesReportUseCase arma el informe PDF de ventas por empresa: resuelve el
// período, carga las ventas ya filtradas y delega el render al generador.
type SalesReportUseCase struct {
	saleRepo      repository.SaleRepository
	inventoryRepo repository.InventoryRepository
	pdfGen        ReportPDFGenerator
}

// NewSalesReportUseCase construye el caso de uso.
func NewSalesReportUseCase(
	saleRepo repository.SaleRepository,
	inventoryRepo repository.InventoryRepository,
	pdfGen ReportPDFGenerator,
) *SalesReportUseCase {
	return &SalesReportUseCase{saleRepo: saleRepo, inventoryRepo: inventoryRepo, pdfGen: pdfGen}
}

// GeneratePDF genera el PDF del informe de ventas de una empresa para el
// período pedido. Devuelve los bytes del documento y la etiqueta del período.
func (uc *SalesReportUseCase) GeneratePDF(ctx context.Context, in dto.SalesReportRequest) ([]byte, error) {
	if in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}

	from, to, label, err := resolvePeriod(in)
	if err != nil {
		return nil, err
	}

	sales, err := uc.saleRepo.ListByCompanyAndPeriod(in.CompanyName, from, to)
	if err != nil {
		return nil, err
	}

	// Nombres de artículo para la tabla; un artículo borrado del inventario
	// se muestra como "Artículo eliminado" en el render.
	itemNames := make(map[string]string, len(sales))
	for _, s := range sales {
		if _, ok := itemNames[s.InventoryID]; ok {
			continue
		}
		item, err := uc.inventoryRepo.GetByID(s.InventoryID)
		if err != nil {
			return nil, err
		}
		if item != nil {
			itemNames[s.InventoryID] = item.Name
		}
	}

	return uc.pdfGen.GenerateSalesReportPDF(ctx, in.CompanyName, label, sales, itemNames)
}

// resolvePeriod traduce el filtro de tiempo a un rango [from, to] y su
// etiqueta. El rango custom se expande al día completo en ambos extremos.
func resolvePeriod(in dto.SalesReportRequest) (from, to *time.Time, label string, err error) {
	now := time.Now()
	switch in.TimeFilter {
	case "", "all":
		return nil, nil, "Todo el período", nil
	case "last30days":
		f := now.AddDate(0, 0, -30)
		return &f, &now, "Últimos 30 días", nil
	case "lastYear":
		f := now.AddDate(-1, 0, 0)
		return &f, &now, "Último año", nil
	case "custom":
		if in.StartDate == "" || in.EndDate == "" {
			return nil, nil, "", domain.ErrInvalidInput
		}
		start, perr := time.Parse("2006-01-02", in.StartDate)
		if perr != nil {
			return nil, nil, "", domain.ErrInvalidInput
		}
		end, perr := time.Parse("2006-01-02", in.EndDate)
		if perr != nil {
			return nil, nil, "", domain.ErrInvalidInput
		}
		// Inicio a las 00:00:00 y fin a las 23:59:59 del día.
		end = end.Add(24*time.Hour - time.Second)
		label = start.Format("02/01/2006") + " - " + end.Format("02/01/2006")
		return &start, &end, label, nil
	default:
		return nil, nil, "", domain.ErrInvalidInput
	}
}
