package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/sales"
)

// SaleHandler maneja las peticiones HTTP para ventas (protegido).
type SaleHandler struct {
	uc       *sales.SaleUseCase
	reportUC *sales.SalesReportUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase, reportUC *sales.SalesReportUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, reportUC: reportUC}
}

// Create godoc
// @Summary      Registrar venta (descuenta stock en la misma transacción)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.InventoryID == "" || in.CompanyName == "" || in.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventory_id, company_name y quantity > 0 son requeridos"})
	}
	out, err := h.uc.CreateSale(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateBulk godoc
// @Summary      Registrar venta múltiple (todo o nada)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkSaleRequest  true  "Líneas de la venta"
// @Success      201   {array}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/bulk [post]
func (h *SaleHandler) CreateBulk(c *fiber.Ctx) error {
	var in dto.BulkSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyID == "" || len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id e items son requeridos"})
	}
	out, err := h.uc.CreateBulkSale(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas (más recientes primero)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), pageFromQuery(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Resumen agregado de ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SaleStatsResponse
// @Router       /api/sales/stats/summary [get]
func (h *SaleHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Informe de ventas por empresa en PDF
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.SalesReportRequest  true  "Empresa y período"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales/report [post]
func (h *SaleHandler) Report(c *fiber.Ctx) error {
	var in dto.SalesReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyName == "" || in.TimeFilter == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_name y time_filter son requeridos"})
	}
	pdfBytes, err := h.reportUC.GeneratePDF(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	filename := "informe_ventas_" + sanitizeFilename(in.CompanyName) + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
