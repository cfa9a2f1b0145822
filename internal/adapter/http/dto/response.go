package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/domain"
	"github.com/shopdesk/shopdesk/internal/usecase"
)

// LineItemResponse represents an order line in API responses.
type LineItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	VariantID *string         `json:"variant_id,omitempty"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID                 string             `json:"id"`
	CustomerID         string             `json:"customer_id"`
	Items              []LineItemResponse `json:"items,omitempty"`
	Subtotal           decimal.Decimal    `json:"subtotal"`
	DiscountPercentage decimal.Decimal    `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal    `json:"discount_amount"`
	AdditionalCost     decimal.Decimal    `json:"additional_cost"`
	VATPercentage      decimal.Decimal    `json:"vat_percentage"`
	VATAmount          decimal.Decimal    `json:"vat_amount"`
	Total              decimal.Decimal    `json:"total"`
	PaidAmount         decimal.Decimal    `json:"paid_amount"`
	DueAmount          decimal.Decimal    `json:"due_amount"`
	Status             string             `json:"status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// OrderFromDomain converts a domain order to a response.
func OrderFromDomain(o *domain.Order) *OrderResponse {
	items := make([]LineItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = LineItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}
	return &OrderResponse{
		ID:                 o.ID,
		CustomerID:         o.CustomerID,
		Items:              items,
		Subtotal:           o.Subtotal,
		DiscountPercentage: o.DiscountPercentage,
		DiscountAmount:     o.DiscountAmount,
		AdditionalCost:     o.AdditionalCost,
		VATPercentage:      o.VATPercentage,
		VATAmount:          o.VATAmount,
		Total:              o.Total,
		PaidAmount:         o.PaidAmount,
		DueAmount:          o.DueAmount,
		Status:             o.Status,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

// OrdersFromDomain converts domain orders to responses.
func OrdersFromDomain(orders []*domain.Order) []*OrderResponse {
	result := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		result[i] = OrderFromDomain(o)
	}
	return result
}

// ListOrdersResponse wraps an order listing.
type ListOrdersResponse struct {
	Orders []*OrderResponse `json:"orders"`
	Total  int64            `json:"total"`
}

// CompanyResponse is the invoice header block.
type CompanyResponse struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	TaxID   string `json:"tax_id,omitempty"`
}

// InvoiceResponse represents a reconciled invoice in API responses.
// Amounts appear twice: as exact decimals for machine consumers and
// as formatted strings for direct rendering.
type InvoiceResponse struct {
	OrderID string          `json:"order_id"`
	Company CompanyResponse `json:"company"`

	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	VATAmount      decimal.Decimal `json:"vat_amount"`
	Total          decimal.Decimal `json:"total"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	DueAmount      decimal.Decimal `json:"due_amount"`

	SubtotalDisplay string `json:"subtotal_display"`
	DiscountDisplay string `json:"discount_display"`
	VATDisplay      string `json:"vat_display"`
	TotalDisplay    string `json:"total_display"`
	PaidDisplay     string `json:"paid_display"`
	DueDisplay      string `json:"due_display"`
}

// InvoiceFromUseCase converts a use case invoice to a response.
func InvoiceFromUseCase(inv *usecase.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		OrderID: inv.OrderID,
		Company: CompanyResponse{
			Name:    inv.Company.Name,
			Address: inv.Company.Address,
			Phone:   inv.Company.Phone,
			Email:   inv.Company.Email,
			TaxID:   inv.Company.TaxID,
		},
		Subtotal:       inv.Breakdown.Subtotal,
		DiscountAmount: inv.Breakdown.DiscountAmount,
		VATAmount:      inv.Breakdown.VATAmount,
		Total:          inv.Breakdown.Total,
		PaidAmount:     inv.Breakdown.PaidAmount,
		DueAmount:      inv.Breakdown.DueAmount,

		SubtotalDisplay: inv.SubtotalDisplay,
		DiscountDisplay: inv.DiscountDisplay,
		VATDisplay:      inv.VATDisplay,
		TotalDisplay:    inv.TotalDisplay,
		PaidDisplay:     inv.PaidDisplay,
		DueDisplay:      inv.DueDisplay,
	}
}

// AccountResponse represents a bank account in API responses.
type AccountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	AccountNumber  string          `json:"account_number,omitempty"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	TotalCredits   decimal.Decimal `json:"total_credits"`
	TotalDebits    decimal.Decimal `json:"total_debits"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.BankAccount) *AccountResponse {
	return &AccountResponse{
		ID:             a.ID,
		Name:           a.Name,
		AccountNumber:  a.AccountNumber,
		CurrentBalance: a.CurrentBalance,
		TotalCredits:   a.TotalCredits,
		TotalDebits:    a.TotalDebits,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.BankAccount) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// TransactionResponse represents a bank transaction in API responses.
type TransactionResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference,omitempty"`
	Status    string          `json:"status"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:        t.ID,
		AccountID: t.AccountID,
		Type:      string(t.Type),
		Amount:    t.Amount,
		Reference: t.Reference,
		Status:    t.Status,
		Date:      t.Date,
		CreatedAt: t.CreatedAt,
	}
}

// LedgerRowResponse is a transaction annotated with the balance the
// account held before the transaction applied.
type LedgerRowResponse struct {
	TransactionResponse
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// LedgerPageResponse wraps one ledger page, oldest row first.
type LedgerPageResponse struct {
	Transactions []LedgerRowResponse `json:"transactions"`
	Total        int64               `json:"total"`
	Limit        int                 `json:"limit"`
	Offset       int                 `json:"offset"`
}

// LedgerPageFromUseCase converts a use case ledger page to a response.
func LedgerPageFromUseCase(page *usecase.LedgerPage, limit, offset int) *LedgerPageResponse {
	rows := make([]LedgerRowResponse, len(page.Transactions))
	for i, tx := range page.Transactions {
		rows[i] = LedgerRowResponse{
			TransactionResponse: *TransactionFromDomain(&tx.Transaction),
			RunningBalance:      tx.RunningBalance,
		}
	}
	return &LedgerPageResponse{
		Transactions: rows,
		Total:        page.Total,
		Limit:        limit,
		Offset:       offset,
	}
}

// IncentiveResponse represents an incentive record in API responses.
type IncentiveResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Reason     string          `json:"reason,omitempty"`
	Date       time.Time       `json:"date"`
}

// IncentivesFromDomain converts domain incentives to responses.
func IncentivesFromDomain(incentives []domain.Incentive) []IncentiveResponse {
	result := make([]IncentiveResponse, len(incentives))
	for i, inc := range incentives {
		result[i] = IncentiveResponse{
			ID:         inc.ID,
			EmployeeID: inc.EmployeeID,
			Amount:     inc.Amount,
			Status:     string(inc.Status),
			Reason:     inc.Reason,
			Date:       inc.Date,
		}
	}
	return result
}

// BalanceResponse reports an employee's withdrawable balance.
type BalanceResponse struct {
	EmployeeID string          `json:"employee_id"`
	Available  decimal.Decimal `json:"available"`
}

// WithdrawalResponse represents a withdrawal in API responses.
type WithdrawalResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// WithdrawalFromDomain converts a domain withdrawal to a response.
func WithdrawalFromDomain(w *domain.Withdrawal) *WithdrawalResponse {
	return &WithdrawalResponse{
		ID:         w.ID,
		EmployeeID: w.EmployeeID,
		Amount:     w.Amount,
		Reason:     w.Reason,
		CreatedAt:  w.CreatedAt,
	}
}

// WithdrawalsFromDomain converts domain withdrawals to responses.
func WithdrawalsFromDomain(withdrawals []domain.Withdrawal) []*WithdrawalResponse {
	result := make([]*WithdrawalResponse, len(withdrawals))
	for i := range withdrawals {
		result[i] = WithdrawalFromDomain(&withdrawals[i])
	}
	return result
}

// WithdrawResultResponse reports an accepted withdrawal and the
// balance left after it.
type WithdrawResultResponse struct {
	Withdrawal *WithdrawalResponse `json:"withdrawal"`
	Remaining  decimal.Decimal     `json:"remaining"`
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Category  string          `json:"category,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Stock     int64           `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductFromDomain converts a domain product to a response.
func ProductFromDomain(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Category:  p.Category,
		UnitPrice: p.UnitPrice,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ProductsFromDomain converts domain products to responses.
func ProductsFromDomain(products []*domain.Product) []*ProductResponse {
	result := make([]*ProductResponse, len(products))
	for i, p := range products {
		result[i] = ProductFromDomain(p)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
