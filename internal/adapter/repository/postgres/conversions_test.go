package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "26.55", "-12.3", "0.0001", "1000000000"} {
		d := decimal.RequireFromString(s)
		got := numericToDecimal(decimalToNumeric(d))
		if !got.Equal(d) {
			t.Errorf("round trip of %s produced %s", s, got)
		}
	}
}

func TestNumericToDecimalPtrKeepsNullDistinctFromZero(t *testing.T) {
	if got := numericToDecimalPtr(pgtype.Numeric{}); got != nil {
		t.Fatalf("expected nil for NULL, got %s", got)
	}

	zero := numericToDecimalPtr(decimalToNumeric(decimal.Zero))
	if zero == nil || !zero.IsZero() {
		t.Fatalf("expected explicit zero to survive, got %v", zero)
	}
}
