package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxLineItemsPerOrder = 500
	MaxPercentage        = "100"
	MaxTransactionAmount = "1000000000" // 1 billion
)

// ValidateLineItemInput checks the order-form preconditions for adding
// an item: a positive integer quantity and a non-negative unit price.
func ValidateLineItemInput(quantity int64, unitPrice decimal.Decimal) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return ErrInvalidUnitPrice
	}
	return nil
}

// ValidatePercentage checks a discount or VAT percentage input.
func ValidatePercentage(name string, pct decimal.Decimal) error {
	if pct.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative, got %s", ErrInvalidPercentage, name, pct.String())
	}

	maxPct, _ := decimal.NewFromString(MaxPercentage)
	if pct.GreaterThan(maxPct) {
		return fmt.Errorf("%w: %s must not exceed %s, got %s", ErrInvalidPercentage, name, MaxPercentage, pct.String())
	}

	return nil
}

// ValidateTransactionAmount checks a bank transaction amount.
func ValidateTransactionAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxTransactionAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrInvalidAmount, MaxTransactionAmount)
	}

	return nil
}

// ParseAmount parses a user-supplied amount string, tolerating
// surrounding whitespace. Anything that does not parse to a finite
// decimal is rejected rather than defaulted, since this guards data
// entry rather than display.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}

	return d, nil
}

// ValidatePagination normalizes pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const maxPageSize = 100
	const defaultPageSize = 20

	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
