package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
)

// CallHandler maneja las peticiones HTTP para llamadas (protegido).
type CallHandler struct {
	uc *usecase.CallUseCase
}

// NewCallHandler construye el handler.
func NewCallHandler(uc *usecase.CallUseCase) *CallHandler {
	return &CallHandler{uc: uc}
}

// List godoc
// @Summary      Listar llamadas (más recientes primero)
// @Tags         calls
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.CallResponse
// @Router       /api/calls [get]
func (h *CallHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar llamada
// @Tags         calls
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCallRequest  true  "Datos de la llamada"
// @Success      201   {object}  dto.CallResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calls [post]
func (h *CallHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCallRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Caller == "" || in.Subject == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "caller y subject son requeridos"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar llamada (solo quien la registró)
// @Tags         calls
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la llamada"
// @Param        body  body  dto.UpdateCallRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CallResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/calls/{id} [put]
func (h *CallHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateCallRequest
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
// @Summary      Eliminar llamada (solo quien la registró)
// @Tags         calls
// @Security     Bearer
// @Param        id   path  string  true  "ID de la llamada"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calls/{id} [delete]
func (h *CallHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id, GetUserID(c)); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
