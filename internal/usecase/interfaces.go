package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/domain"
)

// OrderRepository defines data access for orders and their line items.
type OrderRepository interface {
	Create(ctx context.Context, tx Transaction, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// GetRecord loads an order in its tolerant, possibly-partial form
	// for invoice reconciliation. Missing columns come back nil
	// instead of failing the read.
	GetRecord(ctx context.Context, id string) (domain.OrderRecord, error)
	// List returns a page of orders plus the total count.
	List(ctx context.Context, limit, offset int) ([]*domain.Order, int64, error)
}

// ProductRepository defines data access for products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
}

// AccountRepository defines data access for bank accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.BankAccount) error
	GetByID(ctx context.Context, id string) (*domain.BankAccount, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.BankAccount, error)
	UpdateBalances(ctx context.Context, tx Transaction, account *domain.BankAccount, updatedAt time.Time) error
	// List returns a page of accounts plus the total count.
	List(ctx context.Context, limit, offset int) ([]*domain.BankAccount, int64, error)
}

// TransactionRepository defines data access for bank transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	// ListByAccount returns transactions newest first plus the total
	// count for the account.
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.Transaction, int64, error)
}

// IncentiveRepository defines data access for employee incentives and
// withdrawals.
type IncentiveRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Incentive, error)
	SumWithdrawn(ctx context.Context, employeeID string) (decimal.Decimal, error)
	// LockEmployeeWithdrawals serializes withdrawals for one employee
	// for the lifetime of the transaction.
	LockEmployeeWithdrawals(ctx context.Context, tx Transaction, employeeID string) error
	ListByEmployeeForUpdate(ctx context.Context, tx Transaction, employeeID string) ([]domain.Incentive, error)
	SumWithdrawnForUpdate(ctx context.Context, tx Transaction, employeeID string) (decimal.Decimal, error)
	CreateWithdrawal(ctx context.Context, tx Transaction, w *domain.Withdrawal) error
	ListWithdrawals(ctx context.Context, employeeID string, limit, offset int) ([]domain.Withdrawal, error)
}

// ProfileRepository defines data access for the company profile.
type ProfileRepository interface {
	Get(ctx context.Context) (domain.CompanyProfile, error)
}

// Retrier retries an operation on transient database failures such as
// deadlocks or serialization conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// CurrencyFormatter renders amounts for display. Arithmetic never
// touches formatted strings.
type CurrencyFormatter interface {
	Format(amount decimal.Decimal) string
}
