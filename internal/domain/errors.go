package domain

import "errors"

var (
	// Order errors
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyOrder        = errors.New("order must contain at least one line item")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInvalidUnitPrice  = errors.New("unit price must not be negative")
	ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")

	// Account errors
	ErrAccountNotFound        = errors.New("account not found")
	ErrUnknownTransactionType = errors.New("transaction type must be credit or debit")
	ErrInvalidAmount          = errors.New("amount must be positive")

	// Product errors
	ErrProductNotFound = errors.New("product not found")

	// Incentive errors
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrInvalidWithdrawal  = errors.New("invalid withdrawal amount")
	ErrWithdrawalExceeded = errors.New("withdrawal exceeds available balance")
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	ErrIncentiveNotFound  = errors.New("incentive not found")
)
