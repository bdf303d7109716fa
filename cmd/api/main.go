package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/pos-service/internal/api/http"
	"github.com/spec-kit/pos-service/internal/api/http/handlers"
	"github.com/spec-kit/pos-service/internal/auth"
	"github.com/spec-kit/pos-service/internal/config"
	"github.com/spec-kit/pos-service/internal/events"
	"github.com/spec-kit/pos-service/internal/mail"
	"github.com/spec-kit/pos-service/internal/observability"
	"github.com/spec-kit/pos-service/internal/persistence"
	"github.com/spec-kit/pos-service/internal/repository"
	"github.com/spec-kit/pos-service/internal/service"
	"github.com/spec-kit/pos-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	menuRepo := repository.NewMenuRepository(pool)
	tableRepo := repository.NewTableRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	if cfg.Auth.EncryptionKey == "" {
		// Ephemeral key: fine for development, every restart invalidates
		// all outstanding tokens.
		generated, err := auth.GenerateEncryptionKey()
		if err != nil {
			logger.Fatal("failed to generate encryption key", zap.Error(err))
		}
		logger.Warn("AUTH_ENCRYPTION_KEY not provided; using an ephemeral key")
		cfg.Auth.EncryptionKey = generated
	}

	codec, err := auth.NewTokenCodec(cfg.Auth.SigningKey, cfg.Auth.EncryptionKey)
	if err != nil {
		logger.Fatal("failed to init token codec", zap.Error(err))
	}
	revocationStore := auth.NewRevocationStore(redis.Client)
	codeStore := auth.NewVerificationCodeStore(redis.Client, cfg.Auth.VerifyCodeTTL(), cfg.Auth.Cooldown())
	gate := auth.NewTokenGate(codec, revocationStore)

	dispatcher := events.NewInMemoryDispatcher()
	mailer := mail.NewMailer(cfg.Mail, logger)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo:        userRepo,
		TokenCodec:      codec,
		RevocationStore: revocationStore,
		CodeStore:       codeStore,
		Dispatcher:      dispatcher,
		Logger:          logger,
	})
	menuService := service.NewMenuService(menuRepo)
	tableService := service.NewTableService(tableRepo, orderRepo, userRepo)
	orderService := service.NewOrderService(orderRepo, userRepo, dispatcher, logger)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, dispatcher, logger)
	notificationService := service.NewNotificationService(dispatcher, mailer, logger)

	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:     handlers.NewAuthHandler(authService),
		Menu:     handlers.NewMenuHandler(menuService),
		Tables:   handlers.NewTablesHandler(tableService),
		Orders:   handlers.NewOrdersHandler(orderService),
		Payments: handlers.NewPaymentsHandler(paymentService),
		Gate:     gate,
		Users:    userRepo,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
