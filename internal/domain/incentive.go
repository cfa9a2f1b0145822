package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// IncentiveStatus is the payment state of an incentive record.
type IncentiveStatus string

const (
	IncentivePaid    IncentiveStatus = "paid"
	IncentivePending IncentiveStatus = "pending"
	IncentiveVoid    IncentiveStatus = "void"
)

// Incentive is a bonus or commission record attached to an employee.
type Incentive struct {
	ID         string
	EmployeeID string
	Amount     decimal.Decimal
	Status     IncentiveStatus
	Reason     string
	Date       time.Time
	CreatedAt  time.Time
}

// Withdrawal records an employee taking money out of their incentive
// balance.
type Withdrawal struct {
	ID         string
	EmployeeID string
	Amount     decimal.Decimal
	Reason     string
	CreatedAt  time.Time
}

// AvailableIncentiveBalance sums the withdrawable balance: only paid
// incentives with a positive amount count.
func AvailableIncentiveBalance(incentives []Incentive) decimal.Decimal {
	total := decimal.Zero
	for _, inc := range incentives {
		if inc.Status == IncentivePaid && inc.Amount.IsPositive() {
			total = total.Add(inc.Amount)
		}
	}
	return total
}

// ValidateWithdrawal gates a withdrawal request against the available
// balance. On success it returns the balance that will remain; the
// actual debit is the caller's responsibility.
func ValidateWithdrawal(requested, available decimal.Decimal) (decimal.Decimal, error) {
	if requested.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidWithdrawal
	}
	if requested.GreaterThan(available) {
		return decimal.Zero, fmt.Errorf("%w: available balance is %s", ErrWithdrawalExceeded, available.String())
	}
	return available.Sub(requested), nil
}
