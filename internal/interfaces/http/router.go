package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/reports"
	"github.com/jhoicas/Gestion-api/internal/application/sales"
	"github.com/jhoicas/Gestion-api/internal/application/tasks"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	TaskUC      *tasks.TaskUseCase
	SaleUC      *sales.SaleUseCase
	SaleReport  *sales.SalesReportUseCase
	InventoryUC *usecase.InventoryUseCase
	CompanyUC   *usecase.CompanyUseCase
	CallUC      *usecase.CallUseCase
	ReportUC    *reports.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protegido; solo lectura)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)

	// Tasks (protegido)
	tasksGroup := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasksGroup.Post("/", taskHandler.Create)
	tasksGroup.Get("/", taskHandler.List)
	tasksGroup.Put("/:id", taskHandler.Update)
	tasksGroup.Delete("/:id", taskHandler.Delete)
	tasksGroup.Get("/:id/history", taskHandler.History)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.SaleReport)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Post("/bulk", saleHandler.CreateBulk)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/stats/summary", saleHandler.Stats)
	salesGroup.Post("/report", saleHandler.Report)
	salesGroup.Get("/:id", saleHandler.Get)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Get("/:id", inventoryHandler.Get)
	invGroup.Put("/:id", inventoryHandler.Update)
	invGroup.Delete("/:id", RequireRole(string(entity.RoleAdmin)), inventoryHandler.Delete)

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.Get)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", RequireRole(string(entity.RoleAdmin)), companyHandler.Delete)

	// Calls (protegido)
	calls := protected.Group("/calls")
	callHandler := NewCallHandler(deps.CallUC)
	calls.Get("/", callHandler.List)
	calls.Post("/", callHandler.Create)
	calls.Put("/:id", callHandler.Update)
	calls.Delete("/:id", callHandler.Delete)

	// Reports (protegido; visibilidad por jerarquía de roles)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/", reportHandler.List)
	reportsGroup.Post("/", reportHandler.Create)
	reportsGroup.Put("/:id", reportHandler.Update)
	reportsGroup.Patch("/:id/status", reportHandler.UpdateStatus)
	reportsGroup.Delete("/:id", reportHandler.Delete)
	reportsGroup.Get("/:id/download", reportHandler.Download)
}
