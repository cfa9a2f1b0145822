package domain

import (
	"github.com/shopspring/decimal"
)

// OrderRecord is an order as it comes back from storage or an older
// API version. Every financial field is optional: multi-item orders
// carry Items and backend-calculated totals, legacy single-product
// sales carry only Quantity/UnitPrice, and manually back-filled rows
// may carry almost nothing. Pointers distinguish an absent field from
// an explicit zero, which matters for the due-amount rule.
type OrderRecord struct {
	ID                 string
	Items              []LineItem
	Subtotal           *decimal.Decimal
	DiscountPercentage *decimal.Decimal
	DiscountAmount     *decimal.Decimal
	VATPercentage      *decimal.Decimal
	VATAmount          *decimal.Decimal
	TotalAmount        *decimal.Decimal
	PaidAmount         *decimal.Decimal
	DueAmount          *decimal.Decimal

	// Legacy single-item shape.
	Quantity  *int64
	UnitPrice *decimal.Decimal
}

// InvoiceBreakdown is a fully-populated financial summary ready for
// invoice display. All fields are resolved; absent source data
// resolves to zero rather than an error, so an invoice can always
// render.
type InvoiceBreakdown struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	VATAmount      decimal.Decimal
	Total          decimal.Decimal
	PaidAmount     decimal.Decimal
	DueAmount      decimal.Decimal
}

// ReconcileOrderRecord derives a complete breakdown from a possibly
// partial record. Each field resolves through a fixed priority chain;
// stored values win over recomputation so invoices keep matching
// whatever the backend originally charged.
func ReconcileOrderRecord(rec OrderRecord) InvoiceBreakdown {
	subtotal := resolveSubtotal(rec)
	discount := resolveDiscount(rec, subtotal)
	vat := resolveVAT(rec, subtotal)
	total := resolveTotal(rec, subtotal, discount, vat)
	paid := DecimalOrZero(rec.PaidAmount)

	return InvoiceBreakdown{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		VATAmount:      vat,
		Total:          total,
		PaidAmount:     paid,
		DueAmount:      resolveDue(rec, total, paid),
	}
}

// resolveSubtotal tries, in order: the stored subtotal, the sum of
// line items, the stored total, and the legacy quantity*price pair.
func resolveSubtotal(rec OrderRecord) decimal.Decimal {
	if rec.Subtotal != nil && rec.Subtotal.IsPositive() {
		return *rec.Subtotal
	}

	if len(rec.Items) > 0 {
		sum := decimal.Zero
		for _, item := range rec.Items {
			lineTotal := item.LineTotal
			if lineTotal.IsZero() {
				lineTotal = item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
			}
			sum = sum.Add(lineTotal)
		}
		return sum
	}

	if rec.TotalAmount != nil && rec.TotalAmount.IsPositive() {
		return *rec.TotalAmount
	}

	if rec.Quantity != nil && rec.UnitPrice != nil {
		return rec.UnitPrice.Mul(decimal.NewFromInt(*rec.Quantity))
	}

	return decimal.Zero
}

func resolveDiscount(rec OrderRecord, subtotal decimal.Decimal) decimal.Decimal {
	if rec.DiscountAmount != nil && rec.DiscountAmount.IsPositive() {
		return *rec.DiscountAmount
	}
	if rec.DiscountPercentage != nil && rec.DiscountPercentage.IsPositive() {
		return subtotal.Mul(*rec.DiscountPercentage).Div(oneHundred)
	}
	return decimal.Zero
}

func resolveVAT(rec OrderRecord, subtotal decimal.Decimal) decimal.Decimal {
	if rec.VATAmount != nil {
		return *rec.VATAmount
	}
	return subtotal.Mul(DecimalOrZero(rec.VATPercentage)).Div(oneHundred)
}

func resolveTotal(rec OrderRecord, subtotal, discount, vat decimal.Decimal) decimal.Decimal {
	if rec.TotalAmount != nil && rec.TotalAmount.IsPositive() {
		return *rec.TotalAmount
	}
	if subtotal.IsPositive() {
		return subtotal.Add(vat).Sub(discount)
	}
	return decimal.Zero
}

// resolveDue honors a stored due amount even when it is exactly zero;
// a settled invoice must not be recomputed back into owing money.
func resolveDue(rec OrderRecord, total, paid decimal.Decimal) decimal.Decimal {
	if rec.DueAmount != nil {
		return *rec.DueAmount
	}

	due := total.Sub(paid)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

// DecimalOrZero unwraps an optional decimal, defaulting to zero.
func DecimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
