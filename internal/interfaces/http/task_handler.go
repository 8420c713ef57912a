package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/tasks"
)

// TaskHandler maneja las peticiones HTTP para tareas (protegido).
type TaskHandler struct {
	uc *tasks.TaskUseCase
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *tasks.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tarea
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaskRequest  true  "Datos de la tarea"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.AssignedUserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y assigned_user_id son requeridos"})
	}
	if in.CreatorID == "" {
		in.CreatorID = GetUserID(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tareas (excluye las eliminadas)
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.TaskResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), pageFromQuery(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tarea (estado o campos, nunca ambos)
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.UpdateTaskRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tarea (borrado lógico, solo el creador)
// @Tags         tasks
// @Security     Bearer
// @Param        id   path  string  true  "ID de la tarea"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), id, GetUserID(c)); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// History godoc
// @Summary      Historial de una tarea (más reciente primero)
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tarea"
// @Success      200  {array}  dto.TaskHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/history [get]
func (h *TaskHandler) History(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.History(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
