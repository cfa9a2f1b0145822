package integration

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	adaptershttp "github.com/shopdesk/shopdesk/internal/adapter/http"
	"github.com/shopdesk/shopdesk/internal/adapter/http/handler"
	"github.com/shopdesk/shopdesk/internal/adapter/repository/postgres"
	redisrepo "github.com/shopdesk/shopdesk/internal/adapter/repository/redis"
	"github.com/shopdesk/shopdesk/internal/domain"
	"github.com/shopdesk/shopdesk/internal/infrastructure/currency"
	infraredis "github.com/shopdesk/shopdesk/internal/infrastructure/redis"
	"github.com/shopdesk/shopdesk/internal/usecase"
	"github.com/shopdesk/shopdesk/tests/testutil"
)

// newTestRouter wires the full HTTP stack against the test database
// and a real Redis instance.
func newTestRouter(t *testing.T, testDB *testutil.TestDB) (http.Handler, *redis.Client) {
	t.Helper()

	ctx := context.Background()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}

	pool := testDB.Pool
	logger := zerolog.Nop()

	txManager := postgres.NewTxManager(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	incentiveRepo := postgres.NewIncentiveRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	cache := redisrepo.NewCache(redisClient)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier(logger)

	formatter, err := currency.NewFormatter("USD", "en")
	if err != nil {
		t.Fatalf("failed to build formatter: %v", err)
	}

	profiles := usecase.NewProfileResolver(profileRepo, cache, domain.CompanyProfile{
		Name: "Shopdesk Test",
	}, logger)

	orderUC := usecase.NewOrderUseCase(txManager, orderRepo, idGen, nil)
	invoiceUC := usecase.NewInvoiceUseCase(orderRepo, profiles, formatter, nil)
	accountUC := usecase.NewAccountUseCase(txManager, accountRepo, transactionRepo, idGen, retrier, nil)
	incentiveUC := usecase.NewIncentiveUseCase(txManager, incentiveRepo, idGen, nil)
	productUC := usecase.NewProductUseCase(productRepo, idGen)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		OrderHandler:     handler.NewOrderHandler(orderUC),
		InvoiceHandler:   handler.NewInvoiceHandler(invoiceUC),
		AccountHandler:   handler.NewAccountHandler(accountUC),
		IncentiveHandler: handler.NewIncentiveHandler(incentiveUC),
		ProductHandler:   handler.NewProductHandler(productUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: redisrepo.NewIdempotencyStore(redisClient),
		IdempotencyTTL:   time.Hour,
		Logger:           logger,
	})

	return router, redisClient
}
