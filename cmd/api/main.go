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

	"github.com/jrfmotorparts/pos-backend/internal/application/auth"
	"github.com/jrfmotorparts/pos-backend/internal/application/inventory"
	"github.com/jrfmotorparts/pos-backend/internal/application/reports"
	"github.com/jrfmotorparts/pos-backend/internal/application/sales"
	"github.com/jrfmotorparts/pos-backend/internal/application/usecase"
	"github.com/jrfmotorparts/pos-backend/internal/infrastructure/cache"
	infrapdf "github.com/jrfmotorparts/pos-backend/internal/infrastructure/pdf"
	"github.com/jrfmotorparts/pos-backend/internal/infrastructure/postgres"
	httpRouter "github.com/jrfmotorparts/pos-backend/internal/interfaces/http"
	"github.com/jrfmotorparts/pos-backend/internal/interfaces/ws"
	"github.com/jrfmotorparts/pos-backend/pkg/config"
	"github.com/jrfmotorparts/pos-backend/pkg/logger"
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

	// Repositorios sobre el pool (fuera de transacción)
	partRepo := postgres.NewPartRepository(pool)
	entryRepo := postgres.NewStockEntryRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de settings: Redis si hay addr, noop si no
	var settingCache cache.SettingCache = cache.NoopSettingCache{}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisSettingCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, caché de settings deshabilitado")
		} else {
			settingCache = redisCache
			defer redisCache.Close()
		}
	}

	settingsUC := usecase.NewSettingsUseCase(settingRepo, settingCache, cfg.POS, log)
	if err := settingsUC.SeedDefaults(ctx); err != nil {
		log.Warn().Err(err).Msg("seed de settings por defecto")
	}

	// Hub WebSocket para notificaciones en tiempo real
	hub := ws.NewHub(log)
	go hub.Run()

	notificationUC := usecase.NewNotificationUseCase(notifRepo, staffRepo, hub, log)

	// Motor de inventario y flujo de ventas
	inventoryUC := inventory.NewUseCase(txRunner, partRepo, entryRepo, settingsUC)
	saleHooks := sales.NewSaleHooks(notificationUC, auditRepo, saleRepo, settingsUC, log)
	createSaleUC := sales.NewCreateSaleUseCase(txRunner, inventoryUC, partRepo, saleRepo, customerRepo, saleHooks)

	// Recibos PDF
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := sales.NewReceiptUseCase(saleRepo, partRepo, staffRepo, customerRepo, settingsUC, receiptGenerator)

	authUC := auth.NewAuthUseCase(staffRepo, auditRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	staffUC := usecase.NewStaffUseCase(staffRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, partRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	reportsUC := reports.NewUseCase(reportRepo, settingsUC)

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
		Title:    cfg.POS.StoreName + " API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		StaffUC:        staffUC,
		InventoryUC:    inventoryUC,
		CreateSale:     createSaleUC,
		ReceiptUC:      receiptUC,
		SupplierUC:     supplierUC,
		CustomerUC:     customerUC,
		SettingsUC:     settingsUC,
		NotificationUC: notificationUC,
		ExpenseUC:      expenseUC,
		ReportsUC:      reportsUC,
		AuditRepo:      auditRepo,
		Hub:            hub,
		JWTSecret:      cfg.JWT.Secret,
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
