package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mustItem(t *testing.T, quantity int64, unitPrice string) LineItem {
	t.Helper()

	price, err := decimal.NewFromString(unitPrice)
	if err != nil {
		t.Fatalf("bad price %q: %v", unitPrice, err)
	}

	item, err := NewLineItem("prod-1", nil, quantity, price)
	if err != nil {
		t.Fatalf("unexpected error creating line item: %v", err)
	}

	return item
}

func TestCalculateOrderTotals(t *testing.T) {
	tests := []struct {
		name           string
		items          []LineItem
		discountPct    string
		additionalCost string
		vatPct         string
		wantSubtotal   string
		wantDiscount   string
		wantVAT        string
		wantTotal      string
	}{
		{
			name: "discount then vat",
			items: []LineItem{
				mustItem(t, 2, "10.00"),
				mustItem(t, 1, "5.00"),
			},
			discountPct:    "10",
			additionalCost: "0",
			vatPct:         "18",
			wantSubtotal:   "25.00",
			wantDiscount:   "2.50",
			wantVAT:        "4.05",
			wantTotal:      "26.55",
		},
		{
			name: "additional cost is taxed but not discounted",
			items: []LineItem{
				mustItem(t, 1, "100.00"),
			},
			discountPct:    "50",
			additionalCost: "10",
			vatPct:         "10",
			wantSubtotal:   "100.00",
			wantDiscount:   "50.00",
			wantVAT:        "6",
			wantTotal:      "66",
		},
		{
			name:           "no items",
			items:          nil,
			discountPct:    "10",
			additionalCost: "0",
			vatPct:         "18",
			wantSubtotal:   "0",
			wantDiscount:   "0",
			wantVAT:        "0",
			wantTotal:      "0",
		},
		{
			name: "all adjustments zero",
			items: []LineItem{
				mustItem(t, 3, "7.50"),
			},
			discountPct:    "0",
			additionalCost: "0",
			vatPct:         "0",
			wantSubtotal:   "22.50",
			wantDiscount:   "0",
			wantVAT:        "0",
			wantTotal:      "22.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateOrderTotals(
				tt.items,
				decimal.RequireFromString(tt.discountPct),
				decimal.RequireFromString(tt.additionalCost),
				decimal.RequireFromString(tt.vatPct),
			)

			checks := []struct {
				field string
				got   decimal.Decimal
				want  string
			}{
				{"subtotal", got.Subtotal, tt.wantSubtotal},
				{"discount_amount", got.DiscountAmount, tt.wantDiscount},
				{"vat_amount", got.VATAmount, tt.wantVAT},
				{"total", got.Total, tt.wantTotal},
			}
			for _, c := range checks {
				if !c.got.Equal(decimal.RequireFromString(c.want)) {
					t.Errorf("%s = %s, want %s", c.field, c.got, c.want)
				}
			}
		})
	}
}

func TestCalculateOrderTotals_SubtotalIsOrderIndependent(t *testing.T) {
	a := mustItem(t, 2, "10.00")
	b := mustItem(t, 1, "5.00")
	c := mustItem(t, 4, "0.25")

	forward := CalculateOrderTotals([]LineItem{a, b, c}, decimal.Zero, decimal.Zero, decimal.Zero)
	backward := CalculateOrderTotals([]LineItem{c, b, a}, decimal.Zero, decimal.Zero, decimal.Zero)

	if !forward.Subtotal.Equal(backward.Subtotal) {
		t.Errorf("subtotal depends on item order: %s vs %s", forward.Subtotal, backward.Subtotal)
	}
}

func TestCalculateOrderTotals_TotalChainsExactly(t *testing.T) {
	items := []LineItem{
		mustItem(t, 7, "3.33"),
		mustItem(t, 2, "19.99"),
	}
	additional := decimal.RequireFromString("5.50")

	got := CalculateOrderTotals(items, decimal.RequireFromString("12.5"), additional, decimal.RequireFromString("18"))

	want := got.Subtotal.Sub(got.DiscountAmount).Add(additional).Add(got.VATAmount)
	if !got.Total.Equal(want) {
		t.Errorf("total = %s, want subtotal - discount + additional + vat = %s", got.Total, want)
	}
}

func TestCalculateOrderTotals_Monotonicity(t *testing.T) {
	items := []LineItem{mustItem(t, 2, "50.00")}

	base := CalculateOrderTotals(items, decimal.RequireFromString("10"), decimal.Zero, decimal.RequireFromString("18"))

	moreDiscount := CalculateOrderTotals(items, decimal.RequireFromString("20"), decimal.Zero, decimal.RequireFromString("18"))
	if moreDiscount.Total.GreaterThan(base.Total) {
		t.Errorf("raising discount increased total: %s > %s", moreDiscount.Total, base.Total)
	}

	moreVAT := CalculateOrderTotals(items, decimal.RequireFromString("10"), decimal.Zero, decimal.RequireFromString("25"))
	if moreVAT.Total.LessThan(base.Total) {
		t.Errorf("raising vat decreased total: %s < %s", moreVAT.Total, base.Total)
	}
}

func TestNewLineItem(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int64
		unitPrice string
		wantErr   error
		wantTotal string
	}{
		{name: "valid", quantity: 3, unitPrice: "9.99", wantTotal: "29.97"},
		{name: "zero quantity", quantity: 0, unitPrice: "9.99", wantErr: ErrInvalidQuantity},
		{name: "negative quantity", quantity: -2, unitPrice: "9.99", wantErr: ErrInvalidQuantity},
		{name: "negative price", quantity: 1, unitPrice: "-0.01", wantErr: ErrInvalidUnitPrice},
		{name: "free item", quantity: 5, unitPrice: "0", wantTotal: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewLineItem("prod-1", nil, tt.quantity, decimal.RequireFromString(tt.unitPrice))

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !item.LineTotal.Equal(decimal.RequireFromString(tt.wantTotal)) {
				t.Errorf("line total = %s, want %s", item.LineTotal, tt.wantTotal)
			}
		})
	}
}
