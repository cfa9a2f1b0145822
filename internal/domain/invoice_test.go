package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func i64(v int64) *int64 { return &v }

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s = %s, want %s", field, got, want)
}

func TestReconcileOrderRecord_SubtotalPriority(t *testing.T) {
	tests := []struct {
		name string
		rec  OrderRecord
		want string
	}{
		{
			name: "stored subtotal beats item sum",
			rec: OrderRecord{
				Subtotal: dec("80"),
				Items: []LineItem{
					{Quantity: 2, UnitPrice: decimal.RequireFromString("10"), LineTotal: decimal.RequireFromString("20")},
				},
			},
			want: "80",
		},
		{
			name: "item sum when subtotal absent",
			rec: OrderRecord{
				Items: []LineItem{
					{Quantity: 2, UnitPrice: decimal.RequireFromString("10"), LineTotal: decimal.RequireFromString("20")},
					{Quantity: 1, UnitPrice: decimal.RequireFromString("5"), LineTotal: decimal.RequireFromString("5")},
				},
			},
			want: "25",
		},
		{
			name: "item without stored line total falls back to qty times price",
			rec: OrderRecord{
				Items: []LineItem{
					{Quantity: 3, UnitPrice: decimal.RequireFromString("4")},
				},
			},
			want: "12",
		},
		{
			name: "total amount when no subtotal and no items",
			rec:  OrderRecord{TotalAmount: dec("150")},
			want: "150",
		},
		{
			name: "legacy quantity and unit price",
			rec:  OrderRecord{Quantity: i64(4), UnitPrice: dec("2.50")},
			want: "10",
		},
		{
			name: "zero subtotal is not authoritative",
			rec:  OrderRecord{Subtotal: dec("0"), Quantity: i64(2), UnitPrice: dec("7")},
			want: "14",
		},
		{
			name: "nothing at all",
			rec:  OrderRecord{},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReconcileOrderRecord(tt.rec)
			assertDecimal(t, tt.want, got.Subtotal, "subtotal")
		})
	}
}

func TestReconcileOrderRecord_DiscountResolution(t *testing.T) {
	tests := []struct {
		name string
		rec  OrderRecord
		want string
	}{
		{
			name: "stored amount wins over percentage",
			rec: OrderRecord{
				Subtotal:           dec("200"),
				DiscountAmount:     dec("15"),
				DiscountPercentage: dec("50"),
			},
			want: "15",
		},
		{
			name: "percentage of subtotal when amount absent",
			rec: OrderRecord{
				Subtotal:           dec("200"),
				DiscountPercentage: dec("10"),
			},
			want: "20",
		},
		{
			name: "no discount fields",
			rec:  OrderRecord{Subtotal: dec("200")},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReconcileOrderRecord(tt.rec)
			assertDecimal(t, tt.want, got.DiscountAmount, "discount_amount")
		})
	}
}

func TestReconcileOrderRecord_VATResolution(t *testing.T) {
	stored := ReconcileOrderRecord(OrderRecord{Subtotal: dec("100"), VATAmount: dec("7")})
	assertDecimal(t, "7", stored.VATAmount, "vat_amount")

	// A stored zero VAT is still authoritative, unlike the positive-only
	// rules for subtotal and discount.
	zero := ReconcileOrderRecord(OrderRecord{Subtotal: dec("100"), VATAmount: dec("0"), VATPercentage: dec("18")})
	assertDecimal(t, "0", zero.VATAmount, "vat_amount")

	computed := ReconcileOrderRecord(OrderRecord{Subtotal: dec("100"), VATPercentage: dec("18")})
	assertDecimal(t, "18", computed.VATAmount, "vat_amount")
}

func TestReconcileOrderRecord_DueResolution(t *testing.T) {
	tests := []struct {
		name string
		rec  OrderRecord
		want string
	}{
		{
			name: "computed remainder when due absent",
			rec:  OrderRecord{TotalAmount: dec("100"), PaidAmount: dec("40")},
			want: "60",
		},
		{
			name: "explicit zero due wins over computed remainder",
			rec:  OrderRecord{TotalAmount: dec("100"), PaidAmount: dec("50"), DueAmount: dec("0")},
			want: "0",
		},
		{
			name: "overpayment clamps to zero",
			rec:  OrderRecord{TotalAmount: dec("100"), PaidAmount: dec("120")},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReconcileOrderRecord(tt.rec)
			assertDecimal(t, tt.want, got.DueAmount, "due_amount")
		})
	}
}

func TestReconcileOrderRecord_EmptyRecordIsZeroSafe(t *testing.T) {
	got := ReconcileOrderRecord(OrderRecord{})

	assert.True(t, got.Subtotal.IsZero(), "subtotal")
	assert.True(t, got.DiscountAmount.IsZero(), "discount_amount")
	assert.True(t, got.VATAmount.IsZero(), "vat_amount")
	assert.True(t, got.Total.IsZero(), "total")
	assert.True(t, got.PaidAmount.IsZero(), "paid_amount")
	assert.True(t, got.DueAmount.IsZero(), "due_amount")
}

func TestReconcileOrderRecord_TotalPrefersStoredValue(t *testing.T) {
	rec := OrderRecord{
		Subtotal:       dec("100"),
		DiscountAmount: dec("10"),
		VATAmount:      dec("18"),
		TotalAmount:    dec("111"), // backend rounded differently
	}

	got := ReconcileOrderRecord(rec)
	assertDecimal(t, "111", got.Total, "total")

	rec.TotalAmount = nil
	got = ReconcileOrderRecord(rec)
	assertDecimal(t, "108", got.Total, "total")
}
