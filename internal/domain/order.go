package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem represents one product entry within an order.
type LineItem struct {
	ID        string
	OrderID   string
	ProductID string
	VariantID *string
	Quantity  int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// NewLineItem builds a line item, rejecting invalid quantity or price.
// The line total is fixed at add time and is not recomputed afterwards,
// so totals stay stable even if the upstream price changes later.
func NewLineItem(productID string, variantID *string, quantity int64, unitPrice decimal.Decimal) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return LineItem{}, ErrInvalidUnitPrice
	}

	return LineItem{
		ProductID: productID,
		VariantID: variantID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: unitPrice.Mul(decimal.NewFromInt(quantity)),
	}, nil
}

// Order represents a persisted customer order with its line items.
type Order struct {
	ID                 string
	CustomerID         string
	Items              []LineItem
	Subtotal           decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	AdditionalCost     decimal.Decimal
	VATPercentage      decimal.Decimal
	VATAmount          decimal.Decimal
	Total              decimal.Decimal
	PaidAmount         decimal.Decimal
	DueAmount          decimal.Decimal
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// OrderTotals is the derived financial breakdown for an order form.
type OrderTotals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	VATAmount      decimal.Decimal
	Total          decimal.Decimal
}

// CalculateOrderTotals derives subtotal, discount, VAT and total from
// line items and the three adjustment inputs. The steps are ordered:
// discount applies to the subtotal, additional cost is added after the
// discount, and VAT applies to the discounted amount plus additional
// cost. Callers clamp all inputs to >= 0 before calling.
func CalculateOrderTotals(items []LineItem, discountPct, additionalCost, vatPct decimal.Decimal) OrderTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal)
	}

	discountAmount := subtotal.Mul(discountPct).Div(oneHundred)
	afterDiscount := subtotal.Sub(discountAmount)
	withAdditional := afterDiscount.Add(additionalCost)
	vatAmount := withAdditional.Mul(vatPct).Div(oneHundred)

	return OrderTotals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		VATAmount:      vatAmount,
		Total:          withAdditional.Add(vatAmount),
	}
}

var oneHundred = decimal.NewFromInt(100)
