package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/config"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/database"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/health"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/logger"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/middleware"
	natspkg "github.com/AxelRadin/LudoKan-sub000/internal/pkg/nats"
	nrpkg "github.com/AxelRadin/LudoKan-sub000/internal/pkg/newrelic"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/retry"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/server"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/supervisor"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/validator"
	"github.com/AxelRadin/LudoKan-sub000/services/matchmaking/gateway"
	"github.com/AxelRadin/LudoKan-sub000/services/matchmaking/handler"
	"github.com/AxelRadin/LudoKan-sub000/services/matchmaking/repository"
	"github.com/AxelRadin/LudoKan-sub000/services/matchmaking/usecase"
	"github.com/AxelRadin/LudoKan-sub000/services/matchmaking/worker"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	appName := "matchmaking-service"
	configPath := "config/matchmaking.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Backing services may still be starting, retry the initial connections
	retrier := retry.New(retry.DefaultConfig())

	// Initialize PostgreSQL database connection
	var postgresClient *database.PostgresClient
	err = retrier.Execute(ctx, "postgres connect", func(context.Context) error {
		var connErr error
		postgresClient, connErr = database.NewPostgresClient(configs.Database)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// Initialize Redis client
	var redisClient *database.RedisClient
	err = retrier.Execute(ctx, "redis connect", func(context.Context) error {
		var connErr error
		redisClient, connErr = database.NewRedisClient(configs.Redis)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize NATS
	var natsClient *natspkg.Client
	err = retrier.Execute(ctx, "nats connect", func(context.Context) error {
		var connErr error
		natsClient, connErr = natspkg.NewClient(configs.NATS.URL, appName)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	// Initialize repository, gateway and usecase
	matchmakingRepo := repository.NewMatchRequestRepository(configs, postgresClient.GetDB(), redisClient)
	matchmakingGW := gateway.NewMatchmakingGW(natsClient)
	matchmakingUC := usecase.NewMatchmakingUC(configs, matchmakingRepo, matchmakingGW)

	// Initialize handlers
	h := handler.NewHandler(configs, matchmakingUC, natsClient, redisClient, nrApp)

	// Background services: expiry sweeper and NATS consumers
	tree := supervisor.NewTree(appName, supervisor.DefaultTreeConfig())
	tree.AddWorker(worker.NewSweeper(matchmakingUC, nrApp, configs.Matchmaking.SweepInterval))
	tree.AddMessagingService(h.UserConsumer())
	treeCtx, stopTree := context.WithCancel(ctx)
	treeDone := tree.ServeBackground(treeCtx)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.NewEchoValidator()

	e.Use(echomiddleware.RequestID())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewService(appName)
	healthService.AddChecker("postgres", health.PingChecker(postgresClient))
	healthService.AddChecker("redis", health.PingChecker(redisClient))
	healthService.AddChecker("nats", health.ConnectionChecker(natsClient))
	health.RegisterHealthEndpoints(e, configs.App.Version, healthService)

	// Register service routes
	h.RegisterRoutes(e)

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port, shutdownTimeout)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		stopTree()
		select {
		case <-treeDone:
		case <-ctx.Done():
		}
		if unstopped, err := tree.UnstoppedServiceReport(); err == nil && len(unstopped) > 0 {
			zapLogger.Warn("Background services did not stop in time", zap.Int("count", len(unstopped)))
		}
		return nil
	})
	shutdownManager.Register(func(context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(context.Context) error {
		return postgresClient.Close()
	})
	if nrApp != nil {
		shutdownManager.Register(func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	if err := srv.Start(ctx); err != nil {
		zapLogger.Error("Server stopped with error", zap.String("app", appName), zap.Error(err))
	}

	cleanupCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownManager.Shutdown(cleanupCtx); err != nil {
		zapLogger.Error("Shutdown completed with errors", zap.Error(err))
	}
}
