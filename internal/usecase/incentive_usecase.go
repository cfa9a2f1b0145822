package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/domain"
	"github.com/shopdesk/shopdesk/internal/infrastructure/metrics"
)

// IncentiveUseCase handles employee incentive balances and
// withdrawals.
type IncentiveUseCase struct {
	txManager     TransactionManager
	incentiveRepo IncentiveRepository
	idGen         IDGenerator
	metrics       *metrics.Metrics
}

// NewIncentiveUseCase creates a new IncentiveUseCase.
func NewIncentiveUseCase(txManager TransactionManager, incentiveRepo IncentiveRepository, idGen IDGenerator, metrics *metrics.Metrics) *IncentiveUseCase {
	return &IncentiveUseCase{
		txManager:     txManager,
		incentiveRepo: incentiveRepo,
		idGen:         idGen,
		metrics:       metrics,
	}
}

// ListIncentives returns all incentive records for an employee.
func (uc *IncentiveUseCase) ListIncentives(ctx context.Context, employeeID string) ([]domain.Incentive, error) {
	return uc.incentiveRepo.ListByEmployee(ctx, employeeID)
}

// AvailableBalance computes the withdrawable balance: paid incentives
// minus everything already withdrawn.
func (uc *IncentiveUseCase) AvailableBalance(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	incentives, err := uc.incentiveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return decimal.Zero, err
	}

	withdrawn, err := uc.incentiveRepo.SumWithdrawn(ctx, employeeID)
	if err != nil {
		return decimal.Zero, err
	}

	available := domain.AvailableIncentiveBalance(incentives).Sub(withdrawn)
	if available.IsNegative() {
		available = decimal.Zero
	}

	return available, nil
}

// WithdrawInput represents a withdrawal request.
type WithdrawInput struct {
	EmployeeID string
	Amount     decimal.Decimal
	Reason     string
}

// WithdrawResult reports the persisted withdrawal and the balance left
// after it.
type WithdrawResult struct {
	Withdrawal domain.Withdrawal
	Remaining  decimal.Decimal
}

// Withdraw validates the request against the available balance and
// records the withdrawal. The balance is read and checked inside the
// same transaction that inserts the withdrawal, under a per-employee
// lock, so two concurrent requests cannot both pass validation
// against the same figure.
func (uc *IncentiveUseCase) Withdraw(ctx context.Context, input WithdrawInput) (*WithdrawResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.incentiveRepo.LockEmployeeWithdrawals(ctx, tx, input.EmployeeID); err != nil {
		return nil, err
	}

	incentives, err := uc.incentiveRepo.ListByEmployeeForUpdate(ctx, tx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	withdrawn, err := uc.incentiveRepo.SumWithdrawnForUpdate(ctx, tx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	available := domain.AvailableIncentiveBalance(incentives).Sub(withdrawn)
	if available.IsNegative() {
		available = decimal.Zero
	}

	remaining, err := domain.ValidateWithdrawal(input.Amount, available)
	if err != nil {
		if uc.metrics != nil {
			reason := "invalid_amount"
			if errors.Is(err, domain.ErrWithdrawalExceeded) {
				reason = "exceeds_balance"
			}
			uc.metrics.WithdrawalsRejected.WithLabelValues(reason).Inc()
		}
		return nil, err
	}

	withdrawal := domain.Withdrawal{
		ID:         uc.idGen.Generate(),
		EmployeeID: input.EmployeeID,
		Amount:     input.Amount,
		Reason:     input.Reason,
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.incentiveRepo.CreateWithdrawal(ctx, tx, &withdrawal); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.WithdrawalsAccepted.Inc()
	}

	return &WithdrawResult{
		Withdrawal: withdrawal,
		Remaining:  remaining,
	}, nil
}

// ListWithdrawals lists past withdrawals for an employee.
func (uc *IncentiveUseCase) ListWithdrawals(ctx context.Context, employeeID string, limit, offset int) ([]domain.Withdrawal, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.incentiveRepo.ListWithdrawals(ctx, employeeID, limit, offset)
}
