package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopdesk/shopdesk/internal/domain"
	"github.com/shopdesk/shopdesk/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const insertAccountSQL = `
INSERT INTO bank_accounts (
    id, name, account_number, current_balance, total_credits, total_debits,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// Create creates a new bank account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.BankAccount) error {
	_, err := r.pool.Exec(ctx, insertAccountSQL,
		account.ID,
		account.Name,
		account.AccountNumber,
		decimalToNumeric(account.CurrentBalance),
		decimalToNumeric(account.TotalCredits),
		decimalToNumeric(account.TotalDebits),
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	)

	return err
}

const selectAccountSQL = `
SELECT id, name, account_number, current_balance, total_credits, total_debits,
       created_at, updated_at
FROM bank_accounts
WHERE id = $1`

// GetByID retrieves a bank account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	account, err := scanAccount(r.pool.QueryRow(ctx, selectAccountSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	return account, nil
}

const selectAccountForUpdateSQL = selectAccountSQL + `
FOR UPDATE`

// GetByIDForUpdate retrieves a bank account with a FOR UPDATE lock so
// concurrent balance updates serialize.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.BankAccount, error) {
	pgxTx := tx.(*Tx).PgxTx()

	account, err := scanAccount(pgxTx.QueryRow(ctx, selectAccountForUpdateSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	return account, nil
}

const updateAccountBalancesSQL = `
UPDATE bank_accounts
SET current_balance = $2, total_credits = $3, total_debits = $4, updated_at = $5
WHERE id = $1`

// UpdateBalances writes the account's balance and credit/debit totals
// inside the caller's transaction.
func (r *AccountRepository) UpdateBalances(ctx context.Context, tx usecase.Transaction, account *domain.BankAccount, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, updateAccountBalancesSQL,
		account.ID,
		decimalToNumeric(account.CurrentBalance),
		decimalToNumeric(account.TotalCredits),
		decimalToNumeric(account.TotalDebits),
		timeToPgTimestamptz(updatedAt),
	)

	return err
}

const listAccountsSQL = `
SELECT id, name, account_number, current_balance, total_credits, total_debits,
       created_at, updated_at
FROM bank_accounts
ORDER BY name
LIMIT $1 OFFSET $2`

const countAccountsSQL = `
SELECT count(*) FROM bank_accounts`

// List returns a page of bank accounts plus the total count.
func (r *AccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.BankAccount, int64, error) {
	rows, err := r.pool.Query(ctx, listAccountsSQL, int32(limit), int32(offset))
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var accounts []*domain.BankAccount
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countAccountsSQL).Scan(&total); err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

func scanAccount(row pgx.Row) (*domain.BankAccount, error) {
	var (
		account                            domain.BankAccount
		balance, totalCredits, totalDebits pgtype.Numeric
		createdAt, updatedAt               pgtype.Timestamptz
	)

	err := row.Scan(&account.ID, &account.Name, &account.AccountNumber,
		&balance, &totalCredits, &totalDebits, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	account.CurrentBalance = numericToDecimal(balance)
	account.TotalCredits = numericToDecimal(totalCredits)
	account.TotalDebits = numericToDecimal(totalDebits)
	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}
