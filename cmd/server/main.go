package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	billingapp "github.com/figurine/backend/internal/application/billing"
	catalogapp "github.com/figurine/backend/internal/application/catalog"
	financeapp "github.com/figurine/backend/internal/application/finance"
	integrationapp "github.com/figurine/backend/internal/application/integration"
	inventoryapp "github.com/figurine/backend/internal/application/inventory"
	orderingapp "github.com/figurine/backend/internal/application/ordering"
	partnerapp "github.com/figurine/backend/internal/application/partner"
	"github.com/figurine/backend/internal/infrastructure/config"
	"github.com/figurine/backend/internal/infrastructure/logger"
	"github.com/figurine/backend/internal/infrastructure/persistence"
	"github.com/figurine/backend/internal/infrastructure/storefront"
	"github.com/figurine/backend/internal/interfaces/http/handler"
	"github.com/figurine/backend/internal/interfaces/http/middleware"
	"github.com/figurine/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting figurine backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a zap-backed gorm logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	methodRepo := persistence.NewGormPaymentMethodRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	painterRepo := persistence.NewGormPainterRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	resinRepo := persistence.NewGormResinRepository(db.DB)
	paintBottleRepo := persistence.NewGormPaintBottleRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)

	// Application services
	txScope := persistence.NewGormTransactionScope(db.DB)
	orderService := orderingapp.NewOrderService(orderRepo, customerRepo, painterRepo, productRepo)
	paymentService := billingapp.NewPaymentService(txScope, paymentRepo, methodRepo)
	methodService := billingapp.NewPaymentMethodService(methodRepo, paymentRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	painterService := partnerapp.NewPainterService(painterRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	inventoryService := inventoryapp.NewInventoryService(resinRepo, paintBottleRepo)
	expenseService := financeapp.NewExpenseService(expenseRepo)

	// HTTP handlers
	orderHandler := handler.NewOrderHandler(orderService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	methodHandler := handler.NewPaymentMethodHandler(methodService)
	customerHandler := handler.NewCustomerHandler(customerService)
	painterHandler := handler.NewPainterHandler(painterService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	systemHandler := handler.NewSystemHandler(db, version)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so recovery and request logs carry it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	r := router.NewRouter(engine)
	r.Register(
		orderHandler,
		paymentHandler,
		methodHandler,
		customerHandler,
		painterHandler,
		productHandler,
		categoryHandler,
		inventoryHandler,
		expenseHandler,
		systemHandler,
	)

	// Storefront sync is optional; without credentials the sync routes are
	// simply not mounted.
	if cfg.Storefront.Enabled {
		sfConfig := storefront.NewConfig(cfg.Storefront.BaseURL, cfg.Storefront.ConsumerKey, cfg.Storefront.ConsumerSecret)
		sfConfig.TimeoutSeconds = cfg.Storefront.TimeoutSeconds
		sfClient, err := storefront.NewClient(sfConfig)
		if err != nil {
			log.Fatal("Failed to initialize storefront client", zap.Error(err))
		}
		syncService := integrationapp.NewSyncService(sfClient, orderRepo, customerRepo, productRepo, categoryRepo, log)
		r.Register(handler.NewSyncHandler(syncService))
		log.Info("Storefront sync enabled", zap.String("base_url", cfg.Storefront.BaseURL))
	}

	r.Setup()

	// Plain health endpoint outside API versioning for load balancer probes
	engine.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "ok"})
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
