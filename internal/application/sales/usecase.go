package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// SaleUseCase motor transaccional de ventas: valida stock, calcula totales en
// aritmética decimal y crea la venta decrementando el inventario, todo dentro
// de una transacción con bloqueo de fila (SELECT FOR UPDATE).
type SaleUseCase struct {
	txRunner      TxRunner
	userRepo      repository.UserRepository
	companyRepo   repository.CompanyRepository
	inventoryRepo repository.InventoryRepository
	saleRepo      repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	inventoryRepo repository.InventoryRepository,
	saleRepo repository.SaleRepository,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:      txRunner,
		userRepo:      userRepo,
		companyRepo:   companyRepo,
		inventoryRepo: inventoryRepo,
		saleRepo:      saleRepo,
	}
}

// CreateSale crea una venta de un solo artículo. Pasos, en una transacción:
// resolver vendedor y artículo, verificar stock (con la fila bloqueada),
// calcular total, insertar la venta y decrementar el inventario. Cualquier
// fallo revierte todo: la venta y el decremento nunca se ven por separado.
func (uc *SaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.InventoryID == "" || in.CompanyName == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:           uuid.New().String(),
		UserID:       userID,
		InventoryID:  in.InventoryID,
		UserFullName: user.FullName(),
		CompanyName:  in.CompanyName,
		SaleDate:     now,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		TotalAmount:  in.UnitPrice.Mul(decimal.NewFromInt(in.Quantity)),
		Description:  in.Description,
		Status:       entity.SaleStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		return sellOne(saleRepo, inventoryRepo, sale)
	})
	if err != nil {
		return nil, err
	}
	return saleToResponse(sale), nil
}

// CreateBulkSale crea varias ventas para una empresa en una única transacción
// compartida. Usuario y empresa se resuelven antes de abrir la transacción;
// las líneas se procesan en el orden de entrada y el primer fallo (artículo
// inexistente o stock insuficiente) aborta el lote completo.
func (uc *SaleUseCase) CreateBulkSale(ctx context.Context, userID string, in dto.BulkSaleRequest) ([]*dto.SaleResponse, error) {
	if in.CompanyID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	sellerName := user.FullName()
	sales := make([]*entity.Sale, 0, len(in.Items))

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		for _, item := range in.Items {
			if item.Quantity <= 0 || item.UnitPrice.LessThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			sale := &entity.Sale{
				ID:            uuid.New().String(),
				UserID:        userID,
				InventoryID:   item.InventoryID,
				CompanyID:     company.ID,
				UserFullName:  sellerName,
				CompanyName:   company.Name,
				SaleDate:      now,
				Quantity:      item.Quantity,
				UnitPrice:     item.UnitPrice,
				TotalAmount:   item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)),
				Status:        entity.SaleStatusPending,
				PaymentMethod: in.PaymentMethod,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := sellOne(saleRepo, inventoryRepo, sale); err != nil {
				return err
			}
			sales = append(sales, sale)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, saleToResponse(s))
	}
	return out, nil
}

// sellOne ejecuta la secuencia artículo→stock→venta→decremento para una línea,
// dentro de una transacción ya abierta. GetByIDForUpdate bloquea la fila del
// artículo, serializando ventas concurrentes del mismo stock.
func sellOne(saleRepo repository.SaleRepository, inventoryRepo repository.InventoryRepository, sale *entity.Sale) error {
	item, err := inventoryRepo.GetByIDForUpdate(sale.InventoryID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if item.Quantity < sale.Quantity {
		return &domain.InsufficientStockError{
			Item:      item.Name,
			Available: item.Quantity,
			Requested: sale.Quantity,
		}
	}
	if err := saleRepo.Create(sale); err != nil {
		return err
	}
	return inventoryRepo.UpdateQuantity(item.ID, item.Quantity-sale.Quantity)
}

// List devuelve las ventas más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.SaleResponse, error) {
	page.DefaultPage()
	list, err := uc.saleRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, saleToResponse(s))
	}
	return out, nil
}

// Get devuelve el detalle de una venta.
func (uc *SaleUseCase) Get(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return saleToResponse(sale), nil
}

// Stats devuelve los agregados globales de ventas.
func (uc *SaleUseCase) Stats(ctx context.Context) (*dto.SaleStatsResponse, error) {
	stats, err := uc.saleRepo.Stats()
	if err != nil {
		return nil, err
	}
	return &dto.SaleStatsResponse{
		TotalSales:        stats.TotalSales,
		TotalTransactions: stats.TotalTransactions,
		TotalQuantity:     stats.TotalQuantity,
	}, nil
}

func saleToResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:            s.ID,
		InventoryID:   s.InventoryID,
		UserID:        s.UserID,
		CompanyID:     s.CompanyID,
		UserFullName:  s.UserFullName,
		CompanyName:   s.CompanyName,
		SaleDate:      s.SaleDate,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		TotalAmount:   s.TotalAmount,
		Description:   s.Description,
		Status:        s.Status,
		PaymentMethod: s.PaymentMethod,
	}
}
