package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func tx(txType TransactionType, amount string) Transaction {
	return Transaction{
		Type:   txType,
		Amount: decimal.RequireFromString(amount),
	}
}

func TestAnnotateRunningBalances_UndoWalk(t *testing.T) {
	current := decimal.RequireFromString("500")
	newestFirst := []Transaction{
		tx(TransactionCredit, "100"),
		tx(TransactionDebit, "50"),
	}

	got := AnnotateRunningBalances(current, newestFirst)

	if len(got) != 2 {
		t.Fatalf("expected 2 annotated transactions, got %d", len(got))
	}

	// Output is oldest first: the debit of 50 comes first with 450,
	// then the credit of 100 with 400.
	if !got[0].RunningBalance.Equal(decimal.RequireFromString("450")) {
		t.Errorf("oldest running balance = %s, want 450", got[0].RunningBalance)
	}
	if got[0].Type != TransactionDebit {
		t.Errorf("oldest transaction type = %s, want debit", got[0].Type)
	}
	if !got[1].RunningBalance.Equal(decimal.RequireFromString("400")) {
		t.Errorf("newest running balance = %s, want 400", got[1].RunningBalance)
	}
}

// The newest transaction's running balance is the balance before it
// was applied: 500 current minus the 100 credit gives 400, not 500.
// This pre-application meaning is load-bearing for every displayed
// ledger row; if this test starts failing, the walk was reordered.
func TestAnnotateRunningBalances_NewestRowShowsPreApplicationBalance(t *testing.T) {
	current := decimal.RequireFromString("500")
	newestFirst := []Transaction{tx(TransactionCredit, "100")}

	got := AnnotateRunningBalances(current, newestFirst)

	preApplication := decimal.RequireFromString("400")
	if !got[0].RunningBalance.Equal(preApplication) {
		t.Fatalf("running balance = %s, want pre-application balance %s", got[0].RunningBalance, preApplication)
	}
}

func TestAnnotateRunningBalances_RoundTrip(t *testing.T) {
	current := decimal.RequireFromString("1234.56")
	newestFirst := []Transaction{
		tx(TransactionCredit, "200.10"),
		tx(TransactionDebit, "75.25"),
		tx(TransactionCredit, "0.01"),
		tx(TransactionDebit, "999"),
		tx(TransactionCredit, "44.44"),
	}

	annotated := AnnotateRunningBalances(current, newestFirst)

	// The oldest annotated row carries the balance with every
	// transaction undone; replaying the full list on top of it must
	// land back on the current balance.
	fullyUnwound := annotated[0].RunningBalance
	if got := ReplayTransactions(fullyUnwound, newestFirst); !got.Equal(current) {
		t.Fatalf("round trip = %s, want %s", got, current)
	}
}

func TestAnnotateRunningBalances_EmptyList(t *testing.T) {
	got := AnnotateRunningBalances(decimal.RequireFromString("42"), nil)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(got))
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      Transaction
		wantErr error
	}{
		{name: "valid credit", tx: tx(TransactionCredit, "10")},
		{name: "valid debit", tx: tx(TransactionDebit, "10")},
		{name: "unknown type", tx: tx("refund", "10"), wantErr: ErrUnknownTransactionType},
		{name: "zero amount", tx: tx(TransactionDebit, "0"), wantErr: ErrInvalidAmount},
		{name: "negative amount", tx: tx(TransactionCredit, "-5"), wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
