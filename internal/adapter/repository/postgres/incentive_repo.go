package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/domain"
	"github.com/shopdesk/shopdesk/internal/usecase"
)

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx so the same
// queries can run inside or outside a transaction.
type rowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// IncentiveRepository implements usecase.IncentiveRepository.
type IncentiveRepository struct {
	pool *pgxpool.Pool
}

// NewIncentiveRepository creates a new IncentiveRepository.
func NewIncentiveRepository(pool *pgxpool.Pool) *IncentiveRepository {
	return &IncentiveRepository{pool: pool}
}

const listIncentivesSQL = `
SELECT id, employee_id, amount, status, reason, date, created_at
FROM incentives
WHERE employee_id = $1
ORDER BY date DESC, id DESC`

// ListByEmployee returns all incentive records for an employee. Status
// filtering happens in the domain so the withdrawable-balance rule
// lives in one place.
func (r *IncentiveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Incentive, error) {
	return listIncentives(ctx, r.pool, employeeID)
}

// ListByEmployeeForUpdate reads the incentive records through the
// caller's transaction so the balance check sees any withdrawal that
// committed before the employee lock was granted.
func (r *IncentiveRepository) ListByEmployeeForUpdate(ctx context.Context, tx usecase.Transaction, employeeID string) ([]domain.Incentive, error) {
	return listIncentives(ctx, tx.(*Tx).PgxTx(), employeeID)
}

func listIncentives(ctx context.Context, q rowQuerier, employeeID string) ([]domain.Incentive, error) {
	rows, err := q.Query(ctx, listIncentivesSQL, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incentives []domain.Incentive
	for rows.Next() {
		var (
			inc             domain.Incentive
			status          string
			amount          pgtype.Numeric
			date, createdAt pgtype.Timestamptz
		)

		err := rows.Scan(&inc.ID, &inc.EmployeeID, &amount, &status,
			&inc.Reason, &date, &createdAt)
		if err != nil {
			return nil, err
		}

		inc.Amount = numericToDecimal(amount)
		inc.Status = domain.IncentiveStatus(status)
		inc.Date = date.Time
		inc.CreatedAt = createdAt.Time

		incentives = append(incentives, inc)
	}

	return incentives, rows.Err()
}

const sumWithdrawnSQL = `
SELECT COALESCE(sum(amount), 0) FROM withdrawals WHERE employee_id = $1`

// SumWithdrawn totals all withdrawals an employee has already taken.
func (r *IncentiveRepository) SumWithdrawn(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	return sumWithdrawn(ctx, r.pool, employeeID)
}

// SumWithdrawnForUpdate totals withdrawals through the caller's
// transaction.
func (r *IncentiveRepository) SumWithdrawnForUpdate(ctx context.Context, tx usecase.Transaction, employeeID string) (decimal.Decimal, error) {
	return sumWithdrawn(ctx, tx.(*Tx).PgxTx(), employeeID)
}

func sumWithdrawn(ctx context.Context, q rowQuerier, employeeID string) (decimal.Decimal, error) {
	var sum pgtype.Numeric
	if err := q.QueryRow(ctx, sumWithdrawnSQL, employeeID).Scan(&sum); err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

const lockEmployeeWithdrawalsSQL = `
SELECT pg_advisory_xact_lock(hashtext('withdrawals:' || $1))`

// LockEmployeeWithdrawals takes a transaction-scoped advisory lock
// keyed on the employee ID. It blocks until any concurrent withdrawal
// for the same employee commits or rolls back, and releases
// automatically when the transaction ends.
func (r *IncentiveRepository) LockEmployeeWithdrawals(ctx context.Context, tx usecase.Transaction, employeeID string) error {
	_, err := tx.(*Tx).PgxTx().Exec(ctx, lockEmployeeWithdrawalsSQL, employeeID)
	return err
}

const insertWithdrawalSQL = `
INSERT INTO withdrawals (id, employee_id, amount, reason, created_at)
VALUES ($1, $2, $3, $4, $5)`

// CreateWithdrawal inserts a withdrawal inside the caller's
// transaction.
func (r *IncentiveRepository) CreateWithdrawal(ctx context.Context, tx usecase.Transaction, w *domain.Withdrawal) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, insertWithdrawalSQL,
		w.ID,
		w.EmployeeID,
		decimalToNumeric(w.Amount),
		w.Reason,
		timeToPgTimestamptz(w.CreatedAt),
	)

	return err
}

const listWithdrawalsSQL = `
SELECT id, employee_id, amount, reason, created_at
FROM withdrawals
WHERE employee_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

// ListWithdrawals returns an employee's withdrawals newest first.
func (r *IncentiveRepository) ListWithdrawals(ctx context.Context, employeeID string, limit, offset int) ([]domain.Withdrawal, error) {
	rows, err := r.pool.Query(ctx, listWithdrawalsSQL, employeeID, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var (
			w         domain.Withdrawal
			amount    pgtype.Numeric
			createdAt pgtype.Timestamptz
		)

		if err := rows.Scan(&w.ID, &w.EmployeeID, &amount, &w.Reason, &createdAt); err != nil {
			return nil, err
		}

		w.Amount = numericToDecimal(amount)
		w.CreatedAt = createdAt.Time

		withdrawals = append(withdrawals, w)
	}

	return withdrawals, rows.Err()
}
