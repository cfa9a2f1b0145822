package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/shopdesk/shopdesk/internal/adapter/http"
	"github.com/shopdesk/shopdesk/internal/adapter/http/handler"
	"github.com/shopdesk/shopdesk/internal/adapter/http/middleware"
	postgresRepo "github.com/shopdesk/shopdesk/internal/adapter/repository/postgres"
	redisRepo "github.com/shopdesk/shopdesk/internal/adapter/repository/redis"
	"github.com/shopdesk/shopdesk/internal/domain"
	"github.com/shopdesk/shopdesk/internal/infrastructure/config"
	"github.com/shopdesk/shopdesk/internal/infrastructure/currency"
	"github.com/shopdesk/shopdesk/internal/infrastructure/logger"
	"github.com/shopdesk/shopdesk/internal/infrastructure/metrics"
	"github.com/shopdesk/shopdesk/internal/infrastructure/postgres"
	"github.com/shopdesk/shopdesk/internal/infrastructure/redis"
	"github.com/shopdesk/shopdesk/internal/usecase"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Connect to PostgreSQL
	connectCtx, cancelConnect := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	defer cancelConnect()
	pool, err := postgres.NewPool(connectCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(connectCtx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Metrics
	m := metrics.New()
	go reportPoolStats(ctx, pool, m)

	// Currency formatter for invoice and ledger display
	formatter, err := currency.NewFormatter(cfg.DisplayCurrency, cfg.DisplayLocale)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid display currency configuration")
	}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	orderRepo := postgresRepo.NewOrderRepository(pool)
	productRepo := postgresRepo.NewProductRepository(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	incentiveRepo := postgresRepo.NewIncentiveRepository(pool)
	profileRepo := postgresRepo.NewProfileRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(log.Logger)

	// Initialize use cases
	profiles := usecase.NewProfileResolver(profileRepo, cache, domain.CompanyProfile{
		Name:    cfg.CompanyName,
		Address: cfg.CompanyAddress,
		Phone:   cfg.CompanyPhone,
		Email:   cfg.CompanyEmail,
	}, log.Logger)
	orderUC := usecase.NewOrderUseCase(txManager, orderRepo, idGen, m)
	invoiceUC := usecase.NewInvoiceUseCase(orderRepo, profiles, formatter, m)
	accountUC := usecase.NewAccountUseCase(txManager, accountRepo, transactionRepo, idGen, retrier, m)
	incentiveUC := usecase.NewIncentiveUseCase(txManager, incentiveRepo, idGen, m)
	productUC := usecase.NewProductUseCase(productRepo, idGen)

	// Initialize handlers
	orderHandler := handler.NewOrderHandler(orderUC)
	invoiceHandler := handler.NewInvoiceHandler(invoiceUC)
	accountHandler := handler.NewAccountHandler(accountUC)
	incentiveHandler := handler.NewIncentiveHandler(incentiveUC)
	productHandler := handler.NewProductHandler(productUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Rate limiting
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst, m)
	go cleanupLimiters(ctx, rateLimiter)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		OrderHandler:     orderHandler,
		InvoiceHandler:   invoiceHandler,
		AccountHandler:   accountHandler,
		IncentiveHandler: incentiveHandler,
		ProductHandler:   productHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		Metrics:          m,
		RateLimiter:      rateLimiter,
		Logger:           log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// reportPoolStats samples the connection pool into the gauge.
func reportPoolStats(ctx context.Context, pool *pgxpool.Pool, m *metrics.Metrics) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.DBConnections.Set(float64(pool.Stat().TotalConns()))
		}
	}
}

// cleanupLimiters periodically drops idle per-IP limiters.
func cleanupLimiters(ctx context.Context, rl *middleware.RateLimiter) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.CleanupLimiters()
		}
	}
}
