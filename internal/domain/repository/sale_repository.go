package repository

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// List devuelve las ventas por fecha de venta descendente.
	List(limit, offset int) ([]*entity.Sale, error)
	// ListByCompanyAndPeriod filtra por nombre de empresa y, si from/to no son
	// nil, por rango de fecha de venta (inclusive). Para el informe PDF.
	ListByCompanyAndPeriod(companyName string, from, to *time.Time) ([]*entity.Sale, error)
	// Stats agregados globales: suma de montos, transacciones y unidades.
	Stats() (*entity.SaleStats, error)
}
