package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopdesk/shopdesk/internal/domain"
	"github.com/shopdesk/shopdesk/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const insertTransactionSQL = `
INSERT INTO bank_transactions (id, account_id, type, amount, reference, status, date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// Create inserts a transaction inside the caller's database
// transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, insertTransactionSQL,
		txn.ID,
		txn.AccountID,
		string(txn.Type),
		decimalToNumeric(txn.Amount),
		txn.Reference,
		txn.Status,
		timeToPgTimestamptz(txn.Date),
		timeToPgTimestamptz(txn.CreatedAt),
	)

	return err
}

const listTransactionsSQL = `
SELECT id, account_id, type, amount, reference, status, date, created_at
FROM bank_transactions
WHERE account_id = $1
ORDER BY date DESC, created_at DESC, id DESC
LIMIT $2 OFFSET $3`

const countTransactionsSQL = `
SELECT count(*) FROM bank_transactions WHERE account_id = $1`

// ListByAccount returns a page of transactions newest first plus the
// total count. The ordering matches the running-balance walk, which
// undoes transactions from the current balance backwards.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.Transaction, int64, error) {
	rows, err := r.pool.Query(ctx, listTransactionsSQL, accountID, int32(limit), int32(offset))
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var (
			txn             domain.Transaction
			txType          string
			amount          pgtype.Numeric
			date, createdAt pgtype.Timestamptz
		)

		err := rows.Scan(&txn.ID, &txn.AccountID, &txType, &amount,
			&txn.Reference, &txn.Status, &date, &createdAt)
		if err != nil {
			return nil, 0, err
		}

		txn.Type = domain.TransactionType(txType)
		txn.Amount = numericToDecimal(amount)
		txn.Date = date.Time
		txn.CreatedAt = createdAt.Time

		txs = append(txs, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countTransactionsSQL, accountID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return txs, total, nil
}
