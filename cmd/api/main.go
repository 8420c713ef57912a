package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/reports"
	"github.com/jhoicas/Gestion-api/internal/application/sales"
	"github.com/jhoicas/Gestion-api/internal/application/tasks"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Gestion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Gestion-api/internal/interfaces/http"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	historyRepo := postgres.NewTaskHistoryRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	callRepo := postgres.NewCallRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	taskUC := tasks.NewTaskUseCase(txRunner, taskRepo, historyRepo, userRepo)
	saleUC := sales.NewSaleUseCase(txRunner, userRepo, companyRepo, inventoryRepo, saleRepo)
	saleReportUC := sales.NewSalesReportUseCase(saleRepo, inventoryRepo, pdfGenerator)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	callUC := usecase.NewCallUseCase(callRepo, userRepo)
	reportUC := reports.NewReportUseCase(reportRepo, userRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		TaskUC:      taskUC,
		SaleUC:      saleUC,
		SaleReport:  saleReportUC,
		InventoryUC: inventoryUC,
		CompanyUC:   companyUC,
		CallUC:      callUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
