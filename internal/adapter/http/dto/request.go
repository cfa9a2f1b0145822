package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/domain"
	"github.com/shopdesk/shopdesk/internal/usecase"
)

// LineItemRequest is one requested order line.
type LineItemRequest struct {
	ProductID string          `json:"product_id"`
	VariantID *string         `json:"variant_id,omitempty"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest represents a request to create an order.
type CreateOrderRequest struct {
	CustomerID         string            `json:"customer_id"`
	Items              []LineItemRequest `json:"items"`
	DiscountPercentage decimal.Decimal   `json:"discount_percentage"`
	AdditionalCost     decimal.Decimal   `json:"additional_cost"`
	VATPercentage      decimal.Decimal   `json:"vat_percentage"`
	PaidAmount         decimal.Decimal   `json:"paid_amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateOrderRequest) ToUseCaseInput() usecase.CreateOrderInput {
	items := make([]usecase.LineItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = usecase.LineItemInput{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return usecase.CreateOrderInput{
		CustomerID:         r.CustomerID,
		Items:              items,
		DiscountPercentage: r.DiscountPercentage,
		AdditionalCost:     r.AdditionalCost,
		VATPercentage:      r.VATPercentage,
		PaidAmount:         r.PaidAmount,
	}
}

// CreateAccountRequest represents a request to create a bank account.
type CreateAccountRequest struct {
	Name           string          `json:"name"`
	AccountNumber  string          `json:"account_number"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:           r.Name,
		AccountNumber:  r.AccountNumber,
		OpeningBalance: r.OpeningBalance,
	}
}

// RecordTransactionRequest represents a request to record a credit or
// debit against a bank account.
type RecordTransactionRequest struct {
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference,omitempty"`
	Date      *time.Time      `json:"date,omitempty"`
}

// ToUseCaseInput converts to use case input for the given account.
func (r *RecordTransactionRequest) ToUseCaseInput(accountID string) usecase.RecordTransactionInput {
	return usecase.RecordTransactionInput{
		AccountID: accountID,
		Type:      domain.TransactionType(r.Type),
		Amount:    r.Amount,
		Reference: r.Reference,
		Date:      r.Date,
	}
}

// WithdrawRequest represents an incentive withdrawal request.
type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason,omitempty"`
}

// ToUseCaseInput converts to use case input for the given employee.
func (r *WithdrawRequest) ToUseCaseInput(employeeID string) usecase.WithdrawInput {
	return usecase.WithdrawInput{
		EmployeeID: employeeID,
		Amount:     r.Amount,
		Reason:     r.Reason,
	}
}

// CreateProductRequest represents a request to create a product.
type CreateProductRequest struct {
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Category  string          `json:"category,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Stock     int64           `json:"stock"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateProductRequest) ToUseCaseInput() usecase.CreateProductInput {
	return usecase.CreateProductInput{
		Name:      r.Name,
		SKU:       r.SKU,
		Category:  r.Category,
		UnitPrice: r.UnitPrice,
		Stock:     r.Stock,
	}
}
