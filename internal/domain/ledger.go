package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money entering or leaving an account.
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionCredit || t == TransactionDebit
}

// BankAccount represents a company bank account.
type BankAccount struct {
	ID             string
	Name           string
	AccountNumber  string
	CurrentBalance decimal.Decimal
	TotalCredits   decimal.Decimal
	TotalDebits    decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Transaction is a single credit or debit against a bank account.
type Transaction struct {
	ID        string
	AccountID string
	Type      TransactionType
	Amount    decimal.Decimal
	Reference string
	Status    string
	Date      time.Time
	CreatedAt time.Time
}

// Validate checks a transaction before it is recorded.
func (t *Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrUnknownTransactionType
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// TransactionWithRunningBalance pairs a transaction with the balance
// the account held at that point in history.
type TransactionWithRunningBalance struct {
	Transaction
	RunningBalance decimal.Decimal
}

// AnnotateRunningBalances walks transactions in the given newest-first
// order, starting from the account's current balance and undoing each
// transaction in turn: a credit is subtracted, a debit added back. The
// balance recorded against transaction i is therefore the balance
// *before* transaction i was applied. The annotated list is returned
// reversed, oldest first, ready for ledger display.
//
// Balances are only consistent within a single fetched page when
// the walk restarts from the live current balance; callers that need
// cross-page consistency must seed the walk with the last balance of
// the previous page instead.
func AnnotateRunningBalances(currentBalance decimal.Decimal, txs []Transaction) []TransactionWithRunningBalance {
	running := currentBalance

	annotated := make([]TransactionWithRunningBalance, len(txs))
	for i, tx := range txs {
		switch tx.Type {
		case TransactionCredit:
			running = running.Sub(tx.Amount)
		case TransactionDebit:
			running = running.Add(tx.Amount)
		}
		annotated[i] = TransactionWithRunningBalance{
			Transaction:    tx,
			RunningBalance: running,
		}
	}

	// Oldest first for display.
	for i, j := 0, len(annotated)-1; i < j; i, j = i+1, j-1 {
		annotated[i], annotated[j] = annotated[j], annotated[i]
	}

	return annotated
}

// ReplayTransactions redoes a newest-first transaction list on top of
// a starting balance, the inverse of the undo walk. Applying
// AnnotateRunningBalances and then replaying in reverse order returns
// the original balance, which reconciliation checks rely on.
func ReplayTransactions(startingBalance decimal.Decimal, newestFirst []Transaction) decimal.Decimal {
	balance := startingBalance
	for i := len(newestFirst) - 1; i >= 0; i-- {
		switch newestFirst[i].Type {
		case TransactionCredit:
			balance = balance.Add(newestFirst[i].Amount)
		case TransactionDebit:
			balance = balance.Sub(newestFirst[i].Amount)
		}
	}
	return balance
}
