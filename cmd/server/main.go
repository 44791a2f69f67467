// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"fiscal-service/internal/config"
	"fiscal-service/internal/database"
	"fiscal-service/internal/handler"
	"fiscal-service/internal/middleware"
	"fiscal-service/internal/repository"
	"fiscal-service/internal/service"
	"fiscal-service/internal/utils"
)

// Application represents the main application
type Application struct {
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
	database *database.DB

	printerService *service.PrinterService
	operationRepo  repository.OperationRepository
	wsHandler      *handler.WebSocketHandler
}

// @title Fiscal Printer Service API
// @version 1.0.0
// @description Service driving a NOVITUS/POSNET fiscal printer over a serial link
// @BasePath /api/v1
func main() {
	app, err := NewApplication()
	if err != nil {
		fmt.Printf("Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if err := app.Start(); err != nil {
		app.logger.Fatal("Failed to start application", zap.Error(err))
	}
}

// NewApplication creates a new application instance
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := utils.NewLogger(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	serviceLogger := utils.NewServiceLogger(logger, cfg.App.Name)
	serviceLogger.LogServiceStart(cfg.App.Version)

	app := &Application{
		config: cfg,
		logger: logger,
	}

	if err := app.initializeDatabase(); err != nil {
		// The journal is an audit trail, not a dependency of the printer
		// protocol; the service keeps running without it.
		logger.Warn("Operation journal unavailable", zap.Error(err))
	}

	app.initializeServices()

	if err := app.initializeServer(); err != nil {
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}

	return app, nil
}

// initializeDatabase sets up the journal database and runs migrations
func (app *Application) initializeDatabase() error {
	db, err := database.NewConnection(&app.config.Database, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create database connection: %w", err)
	}

	app.database = db

	migrator := database.NewMigrator(db, app.logger, &app.config.Database)
	if err := migrator.Up(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	app.operationRepo = repository.NewOperationRepository(db, app.logger)

	app.logger.Info("Operation journal initialized")
	return nil
}

// initializeServices creates the printer service and its event sink
func (app *Application) initializeServices() {
	app.printerService = service.NewPrinterService(app.config, app.operationRepo, app.logger)

	app.wsHandler = handler.NewWebSocketHandler(app.logger)
	app.printerService.SetEventHandler(app.wsHandler)

	app.logger.Info("Services initialized")
}

// initializeServer sets up the HTTP server and routes
func (app *Application) initializeServer() error {
	if app.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	app.addMiddleware(router)
	app.addRoutes(router)

	app.server = &http.Server{
		Addr:         app.config.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  app.config.Server.ReadTimeout,
		WriteTimeout: app.config.Server.WriteTimeout,
		IdleTimeout:  app.config.Server.IdleTimeout,
	}

	app.logger.Info("HTTP server initialized",
		zap.String("address", app.config.GetServerAddr()),
	)

	return nil
}

// addMiddleware adds middleware to the router
func (app *Application) addMiddleware(router *gin.Engine) {
	router.Use(middleware.RecoveryMiddleware(app.logger))
	router.Use(middleware.RequestIDMiddleware())

	serviceLogger := utils.NewServiceLogger(app.logger, "http-server")
	router.Use(middleware.LoggingMiddleware(serviceLogger))

	router.Use(middleware.CORSMiddleware(&app.config.Server))
}

// addRoutes adds all routes to the router
func (app *Application) addRoutes(router *gin.Engine) {
	healthHandler := handler.NewHealthHandler(app.database, app.config, app.printerService, app.logger)
	healthHandler.RegisterRoutes(router.Group(""))

	api := router.Group("/api/v1")

	printerHandler := handler.NewPrinterHandler(app.printerService, app.logger)
	printerHandler.RegisterRoutes(api)

	app.wsHandler.RegisterRoutes(router.Group("/ws"))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	router.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	app.logger.Info("Routes configured")
}

// connectPrinter opens the serial link at startup; a failure is only logged,
// and the link can be opened later through POST /api/v1/printer/connect.
func (app *Application) connectPrinter() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.printerService.Connect(ctx); err != nil {
		app.logger.Warn("Printer not connected at startup, connect via the API once the device is ready",
			zap.Error(err),
		)
	}
}

// cleanupJournal periodically removes old journal entries
func (app *Application) cleanupJournal() {
	if app.operationRepo == nil {
		return
	}

	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)

		oldDate := time.Now().AddDate(0, 0, -30)
		deleted, err := app.operationRepo.DeleteOldOperations(ctx, oldDate)
		if err != nil {
			app.logger.Error("Failed to cleanup old operations", zap.Error(err))
		} else if deleted > 0 {
			app.logger.Info("Cleaned up old operations", zap.Int64("deleted", deleted))
		}

		cancel()
	}
}

// waitForShutdown waits for a signal and performs graceful shutdown
func (app *Application) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	app.logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	app.shutdown()
}

// shutdown performs graceful shutdown
func (app *Application) shutdown() {
	serviceLogger := utils.NewServiceLogger(app.logger, app.config.App.Name)
	serviceLogger.LogServiceStop("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		app.logger.Info("HTTP server stopped")
	}

	if err := app.printerService.Disconnect(); err != nil {
		app.logger.Error("Printer disconnect error", zap.Error(err))
	}

	if app.database != nil {
		if err := app.database.Close(); err != nil {
			app.logger.Error("Database close error", zap.Error(err))
		}
	}

	if err := utils.CloseLogger(app.logger); err != nil {
		fmt.Printf("Logger close error: %v\n", err)
	}

	app.logger.Info("Application shutdown completed")
}

// Start runs the application until a shutdown signal arrives
func (app *Application) Start() error {
	go func() {
		app.logger.Info("Starting HTTP server",
			zap.String("address", app.server.Addr),
		)

		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	app.connectPrinter()

	go app.cleanupJournal()

	app.waitForShutdown()

	return nil
}
