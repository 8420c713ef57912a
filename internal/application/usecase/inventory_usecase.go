package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// InventoryUseCase mantenimiento del catálogo de inventario. El decremento
// de stock por ventas NO pasa por aquí: vive en el motor de ventas, dentro
// de su transacción.
type InventoryUseCase struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(inventoryRepo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{inventoryRepo: inventoryRepo}
}

// List devuelve los artículos por fecha de actualización descendente.
func (uc *InventoryUseCase) List(page dto.PageRequest) ([]*dto.InventoryItemResponse, error) {
	page.DefaultPage()
	items, err := uc.inventoryRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, inventoryToResponse(it))
	}
	return out, nil
}

// Get devuelve un artículo por id.
func (uc *InventoryUseCase) Get(id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.inventoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return inventoryToResponse(item), nil
}

// Create da de alta un artículo.
func (uc *InventoryUseCase) Create(actingUserID string, in dto.CreateInventoryRequest) (*dto.InventoryItemResponse, error) {
	if in.Name == "" || in.Category == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		Price:         in.Price,
		Status:        entity.InventoryStatusActive,
		LastUpdatedBy: actingUserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.inventoryRepo.Create(item); err != nil {
		return nil, err
	}
	return inventoryToResponse(item), nil
}

// Update aplica los campos presentes del request.
func (uc *InventoryUseCase) Update(id, actingUserID string, in dto.UpdateInventoryRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.inventoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.InventoryStatusActive, entity.InventoryStatusInactive, entity.InventoryStatusOutOfStock:
			item.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	item.LastUpdatedBy = actingUserID
	item.UpdatedAt = time.Now()

	if err := uc.inventoryRepo.Update(item); err != nil {
		return nil, err
	}
	return inventoryToResponse(item), nil
}

// Delete elimina el artículo del catálogo.
func (uc *InventoryUseCase) Delete(id string) error {
	item, err := uc.inventoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.inventoryRepo.Delete(id)
}

func inventoryToResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		Category:      it.Category,
		Quantity:      it.Quantity,
		Unit:          it.Unit,
		Price:         it.Price,
		Status:        it.Status,
		LastUpdatedBy: it.LastUpdatedBy,
		UpdatedAt:     it.UpdatedAt,
	}
}
