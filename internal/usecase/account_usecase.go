package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/domain"
	"github.com/shopdesk/shopdesk/internal/infrastructure/metrics"
)

// AccountUseCase handles bank account and transaction business logic.
type AccountUseCase struct {
	txManager       TransactionManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	idGen           IDGenerator
	retrier         Retrier
	metrics         *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *AccountUseCase {
	return &AccountUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
		retrier:         retrier,
		metrics:         metrics,
	}
}

// CreateAccountInput represents input for creating a bank account.
type CreateAccountInput struct {
	Name           string
	AccountNumber  string
	OpeningBalance decimal.Decimal
}

// CreateAccount creates a new bank account.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.BankAccount, error) {
	if input.OpeningBalance.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	now := time.Now().UTC()
	account := &domain.BankAccount{
		ID:             uc.idGen.Generate(),
		Name:           input.Name,
		AccountNumber:  input.AccountNumber,
		CurrentBalance: input.OpeningBalance,
		TotalCredits:   decimal.Zero,
		TotalDebits:    decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves a bank account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.BankAccount, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccounts returns a page of bank accounts plus the total count.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, limit, offset int) ([]*domain.BankAccount, int64, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.accountRepo.List(ctx, limit, offset)
}

// RecordTransactionInput represents input for recording a credit or
// debit against a bank account.
type RecordTransactionInput struct {
	AccountID string
	Type      domain.TransactionType
	Amount    decimal.Decimal
	Reference string
	Date      *time.Time
}

// RecordTransaction validates and persists a transaction, updating the
// account's balance and credit/debit totals in the same database
// transaction. The account row is locked so concurrent recordings
// serialize instead of losing updates.
func (uc *AccountUseCase) RecordTransaction(ctx context.Context, input RecordTransactionInput) (*domain.Transaction, error) {
	if err := domain.ValidateTransactionAmount(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := now
	if input.Date != nil {
		date = input.Date.UTC()
	}

	txn := &domain.Transaction{
		ID:        uc.idGen.Generate(),
		AccountID: input.AccountID,
		Type:      input.Type,
		Amount:    input.Amount,
		Reference: input.Reference,
		Status:    "completed",
		Date:      date,
		CreatedAt: now,
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	// The whole locked transaction reruns on deadlock or serialization
	// failure, re-reading the account each attempt.
	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
		if err != nil {
			return err
		}

		switch txn.Type {
		case domain.TransactionCredit:
			account.CurrentBalance = account.CurrentBalance.Add(txn.Amount)
			account.TotalCredits = account.TotalCredits.Add(txn.Amount)
		case domain.TransactionDebit:
			account.CurrentBalance = account.CurrentBalance.Sub(txn.Amount)
			account.TotalDebits = account.TotalDebits.Add(txn.Amount)
		}

		if err := uc.transactionRepo.Create(ctx, tx, txn); err != nil {
			return err
		}

		if err := uc.accountRepo.UpdateBalances(ctx, tx, account, now); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsRecorded.WithLabelValues(string(txn.Type)).Inc()
		uc.metrics.TransactionAmount.Observe(txn.Amount.InexactFloat64())
	}

	return txn, nil
}

// ListTransactionsInput represents input for the ledger view.
type ListTransactionsInput struct {
	AccountID string
	Limit     int
	Offset    int

	// StartingBalance seeds the running-balance walk. When nil the
	// walk starts from the account's live current balance, which is
	// only consistent within the first page; callers paging deeper
	// pass the oldest running balance of the previous page here to
	// keep pages mutually consistent.
	StartingBalance *decimal.Decimal
}

// LedgerPage is one page of annotated transactions.
type LedgerPage struct {
	Transactions []domain.TransactionWithRunningBalance
	Total        int64
}

// ListTransactions returns a page of transactions annotated with
// running balances, oldest first within the page.
func (uc *AccountUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) (*LedgerPage, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	account, err := uc.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	txs, total, err := uc.transactionRepo.ListByAccount(ctx, input.AccountID, limit, offset)
	if err != nil {
		return nil, err
	}

	starting := account.CurrentBalance
	if input.StartingBalance != nil {
		starting = *input.StartingBalance
	}

	if uc.metrics != nil {
		uc.metrics.LedgerPagesServed.Inc()
	}

	return &LedgerPage{
		Transactions: domain.AnnotateRunningBalances(starting, txs),
		Total:        total,
	}, nil
}
