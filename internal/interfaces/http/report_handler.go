package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/reports"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ReportHandler maneja las peticiones HTTP para informes (protegido).
// El listado y la descarga filtran por la jerarquía de roles del solicitante.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// List godoc
// @Summary      Listar informes visibles para el rol del solicitante
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReportResponse
// @Router       /api/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), entity.Role(GetRole(c)))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear informe (estado inicial borrador)
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReportRequest  true  "Datos del informe"
// @Success      201   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y content son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar informe (solo el autor)
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del informe"
// @Param        body  body  dto.UpdateReportRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ReportResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [put]
func (h *ReportHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de un informe (jerarquía + tabla de transiciones)
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del informe"
// @Param        body  body  dto.UpdateReportStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/status [patch]
func (h *ReportHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateReportStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NewStatus == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "new_status es requerido"})
	}
	out, err := h.uc.UpdateStatus(c.Context(), id, GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar informe (autor o admin)
// @Tags         reports
// @Security     Bearer
// @Param        id   path  string  true  "ID del informe"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), id, GetUserID(c), entity.Role(GetRole(c))); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Download godoc
// @Summary      Descargar la ficha PDF de un informe
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del informe"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/download [get]
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, title, err := h.uc.DownloadPDF(c.Context(), id, entity.Role(GetRole(c)))
	if err != nil {
		return respondDomainError(c, err)
	}
	filename := "informe_" + sanitizeFilename(title) + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
