package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP para inventario (protegido).
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar artículos de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.InventoryItemResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener artículo por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.InventoryItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Get(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear artículo de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y category son requeridos"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar artículo de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.UpdateInventoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar artículo de inventario
// @Tags         inventory
// @Security     Bearer
// @Param        id   path  string  true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
