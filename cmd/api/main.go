package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/rightchoice/medicare-api/internal/application/analytics"
	"github.com/rightchoice/medicare-api/internal/application/auth"
	"github.com/rightchoice/medicare-api/internal/application/ledger"
	"github.com/rightchoice/medicare-api/internal/application/payments"
	"github.com/rightchoice/medicare-api/internal/application/procurement"
	"github.com/rightchoice/medicare-api/internal/application/sales"
	"github.com/rightchoice/medicare-api/internal/application/usecase"
	"github.com/rightchoice/medicare-api/internal/infrastructure/postgres"
	"github.com/rightchoice/medicare-api/internal/infrastructure/razorpay"
	httpRouter "github.com/rightchoice/medicare-api/internal/interfaces/http"
	"github.com/rightchoice/medicare-api/pkg/config"
	"github.com/rightchoice/medicare-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	gstReturnRepo := postgres.NewGSTReturnRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	engine := ledger.NewEngine(txRunner, itemRepo, locationRepo)

	authUC := auth.NewUseCase(userRepo, companyRepo, auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	})
	catalogUC := usecase.NewCatalogUseCase(companyRepo, locationRepo, categoryRepo, itemRepo, customerRepo, supplierRepo)
	inventoryUC := usecase.NewInventoryQueryUseCase(stockRepo, batchRepo, movementRepo)
	procurementUC := procurement.NewUseCase(txRunner, engine, supplierRepo, itemRepo, locationRepo,
		postgres.NewPurchaseOrderRepository(pool), postgres.NewGRNRepository(pool))
	salesUC := sales.NewUseCase(txRunner, engine, companyRepo, customerRepo, itemRepo, locationRepo,
		postgres.NewSalesOrderRepository(pool), invoiceRepo)
	paymentsUC := payments.NewUseCase(txRunner, razorpay.NewClient(cfg.Razorpay), invoiceRepo, paymentRepo)
	gstReturnUC := usecase.NewGSTReturnUseCase(gstReturnRepo)
	analyticsUC := appanalytics.NewUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		InventoryUC: inventoryUC,
		Ledger:      engine,
		Procurement: procurementUC,
		Sales:       salesUC,
		Payments:    paymentsUC,
		GSTReturnUC: gstReturnUC,
		Analytics:   analyticsUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
