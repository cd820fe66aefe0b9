package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetyard/dispatch/internal/pkg/config"
	"github.com/fleetyard/dispatch/internal/pkg/database"
	"github.com/fleetyard/dispatch/internal/pkg/health"
	pkghttp "github.com/fleetyard/dispatch/internal/pkg/http"
	"github.com/fleetyard/dispatch/internal/pkg/logger"
	"github.com/fleetyard/dispatch/internal/pkg/middleware"
	natspkg "github.com/fleetyard/dispatch/internal/pkg/nats"
	"github.com/fleetyard/dispatch/services/dispatch/gateway"
	gatewayhttp "github.com/fleetyard/dispatch/services/dispatch/gateway/http"
	"github.com/fleetyard/dispatch/services/dispatch/handler"
	"github.com/fleetyard/dispatch/services/dispatch/repository"
	"github.com/fleetyard/dispatch/services/dispatch/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/dispatch.env"
	}
	cfg := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	appLogger.InfoF("Starting dispatch service",
		logger.String("environment", cfg.App.Environment),
		logger.String("version", cfg.App.Version))

	// PostgreSQL
	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		appLogger.FatalF("Failed to connect to postgres", logger.Err(err))
	}
	defer pgClient.Close()

	// Redis
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.FatalF("Failed to connect to redis", logger.Err(err))
	}
	defer redisClient.Close()

	// NATS
	natsClient, err := natspkg.NewClient(cfg.NATS.URL)
	if err != nil {
		appLogger.FatalF("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Wiring
	dispatchRepo := repository.NewDispatchRepository(cfg, pgClient.GetDB())
	viewCache := repository.NewViewCache(cfg, redisClient)
	dispatchGW := gateway.NewDispatchGW(natsClient)
	bookingGW := gatewayhttp.NewBookingGW(
		pkghttp.NewClient(cfg.Services.BookingServiceURL, 10*time.Second),
		cfg.APIKey.BookingService,
	)
	fleetGW := gatewayhttp.NewFleetGW(
		pkghttp.NewClient(cfg.Services.FleetServiceURL, 10*time.Second),
		cfg.APIKey.FleetService,
	)
	dispatchUC := usecase.NewDispatchUC(cfg, dispatchRepo, viewCache, dispatchGW, bookingGW, fleetGW)
	dispatchHandler := handler.NewHandler(dispatchUC, natsClient)

	if err := dispatchHandler.InitNATSConsumers(); err != nil {
		appLogger.FatalF("Failed to start NATS consumers", logger.Err(err))
	}

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))

	apiKeyMW := middleware.NewAPIKeyMiddleware(&cfg.APIKey)
	dispatchHandler.RegisterRoutes(e, apiKeyMW, cfg.JWT)

	healthService := health.NewService(appLogger)
	healthService.AddChecker("postgres", health.CheckerFunc(pgClient.Ping))
	healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	healthService.AddChecker("nats", health.CheckerFunc(func(ctx context.Context) error {
		if !natsClient.IsConnected() {
			return fmt.Errorf("nats connection lost")
		}
		return nil
	}))
	health.RegisterHealthEndpoints(e, cfg.App.Name, cfg.App.Version, healthService)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		appLogger.InfoF("HTTP server listening", logger.String("addr", addr))
		if err := e.Start(addr); err != nil {
			appLogger.InfoF("HTTP server stopped", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.InfoF("Shutting down dispatch service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.ErrorF("Failed to shut down HTTP server gracefully", logger.Err(err))
	}

	appLogger.InfoF("Dispatch service stopped")
}
