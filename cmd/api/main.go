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
	"github.com/redis/go-redis/v9"

	appauth "github.com/alexsagar/teantea-api/internal/application/auth"
	appinventory "github.com/alexsagar/teantea-api/internal/application/inventory"
	apporder "github.com/alexsagar/teantea-api/internal/application/order"
	"github.com/alexsagar/teantea-api/internal/application/usecase"
	"github.com/alexsagar/teantea-api/internal/domain/event"
	"github.com/alexsagar/teantea-api/internal/infrastructure/events"
	infrapdf "github.com/alexsagar/teantea-api/internal/infrastructure/pdf"
	"github.com/alexsagar/teantea-api/internal/infrastructure/postgres"
	httpRouter "github.com/alexsagar/teantea-api/internal/interfaces/http"
	"github.com/alexsagar/teantea-api/pkg/config"
	"github.com/alexsagar/teantea-api/pkg/logger"
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

	// Realtime events ride Redis pub/sub; with no Redis configured the
	// publisher is a noop and the API still works.
	var publisher event.Publisher = event.Noop{}
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rp := events.NewRedisPublisher(client, log)
		if err := rp.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("Redis connection")
		}
		publisher = rp
		defer client.Close()
	}

	shopRepo := postgres.NewShopRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	tableRepo := postgres.NewTableRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	stockInRepo := postgres.NewStockInRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	templateRepo := postgres.NewNotificationTemplateRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := appauth.NewAuthUseCase(userRepo, shopRepo, appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	staffUC := usecase.NewStaffUseCase(userRepo)
	menuUC := usecase.NewMenuUseCase(menuRepo)
	orderUC := apporder.NewUseCase(orderRepo, menuRepo, tableRepo, publisher)
	inventoryUC := appinventory.NewUseCase(inventoryRepo, supplierRepo, stockInRepo, txRunner, publisher)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	tableUC := usecase.NewTableUseCase(tableRepo, publisher)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	settingUC := usecase.NewSettingUseCase(settingRepo, templateRepo)
	reportUC := usecase.NewReportUseCase(reportRepo, inventoryRepo)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TeanTea API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		StaffUC:     staffUC,
		MenuUC:      menuUC,
		OrderUC:     orderUC,
		InventoryUC: inventoryUC,
		CustomerUC:  customerUC,
		TableUC:     tableUC,
		SupplierUC:  supplierUC,
		SettingUC:   settingUC,
		ReportUC:    reportUC,

		ShopRepo:     shopRepo,
		CustomerRepo: customerRepo,
		UserRepo:     userRepo,
		Receipts:     receiptGenerator,
		JWTSecret:    cfg.JWT.Secret,
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
