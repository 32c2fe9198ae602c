package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/spinr-app/dispatch/internal/pkg/config"
	"github.com/spinr-app/dispatch/internal/pkg/database"
	"github.com/spinr-app/dispatch/internal/pkg/health"
	"github.com/spinr-app/dispatch/internal/pkg/logger"
	"github.com/spinr-app/dispatch/internal/pkg/middleware"
	"github.com/spinr-app/dispatch/internal/pkg/nsq"
	"github.com/spinr-app/dispatch/internal/pkg/server"
	"github.com/spinr-app/dispatch/internal/pkg/websocket"
	farehandler "github.com/spinr-app/dispatch/services/fares/handler"
	farerepository "github.com/spinr-app/dispatch/services/fares/repository"
	fareusecase "github.com/spinr-app/dispatch/services/fares/usecase"
	locationhandler "github.com/spinr-app/dispatch/services/location/handler"
	locationrepository "github.com/spinr-app/dispatch/services/location/repository"
	locationusecase "github.com/spinr-app/dispatch/services/location/usecase"
	"github.com/spinr-app/dispatch/services/rides/gateway"
	"github.com/spinr-app/dispatch/services/rides/handler"
	"github.com/spinr-app/dispatch/services/rides/repository"
	"github.com/spinr-app/dispatch/services/rides/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NSQ producer for push notifications
	producer, err := nsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	// Realtime hub shared by the websocket handler and the ride gateway
	hub := websocket.NewHub()

	db := postgresClient.GetDB()

	// Initialize repositories
	fareRepo := farerepository.NewFareRepository(db)
	rideRepo := repository.NewRideRepository(db)
	driverRepo := repository.NewDriverRepository(db, redisClient)
	settingsRepo := repository.NewSettingsRepository(db)
	locationRepo := locationrepository.NewLocationRepository(db, redisClient)

	// Initialize gateway
	rideGW := gateway.NewRideGW(hub, producer)

	// Initialize use cases
	fareUC := fareusecase.NewFareUC(fareRepo)
	rideUC := usecase.NewRideUC(configs, rideRepo, driverRepo, settingsRepo, fareUC, rideGW)
	locationUC := locationusecase.NewLocationUC(configs, locationRepo, rideRepo, driverRepo, hub)

	// Initialize handlers
	fareHandler := farehandler.NewFareHandler(fareUC)
	rideHandler := handler.NewRideHandler(rideUC)
	wsHandler := locationhandler.NewWSHandler(configs, hub, locationUC)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(echomiddleware.RequestID())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"postgres": postgresClient,
		"redis":    redisClient,
	})

	// Register service routes
	fareHandler.RegisterRoutes(e)
	api := e.Group("/api", middleware.JWTAuthMiddleware(configs.JWT))
	rideHandler.RegisterRoutes(api, e)
	wsHandler.RegisterRoutes(e)

	// Start the scheduled ride promoter
	promoterCtx, stopPromoter := context.WithCancel(context.Background())
	promoter := usecase.NewPromoter(rideUC, configs)
	go promoter.Run(promoterCtx)

	// Register component cleanup in shutdown order
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		stopPromoter()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	// Run until a shutdown signal arrives, then drain and clean up
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, configs.Server.ShutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
