package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/domain"
	"github.com/shopdesk/shopdesk/internal/infrastructure/metrics"
)

// OrderUseCase handles order business logic.
type OrderUseCase struct {
	txManager TransactionManager
	orderRepo OrderRepository
	idGen     IDGenerator
	metrics   *metrics.Metrics
}

// NewOrderUseCase creates a new OrderUseCase.
func NewOrderUseCase(txManager TransactionManager, orderRepo OrderRepository, idGen IDGenerator, metrics *metrics.Metrics) *OrderUseCase {
	return &OrderUseCase{
		txManager: txManager,
		orderRepo: orderRepo,
		idGen:     idGen,
		metrics:   metrics,
	}
}

// LineItemInput is one requested line item.
type LineItemInput struct {
	ProductID string
	VariantID *string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// CreateOrderInput represents input for creating an order.
type CreateOrderInput struct {
	CustomerID         string
	Items              []LineItemInput
	DiscountPercentage decimal.Decimal
	AdditionalCost     decimal.Decimal
	VATPercentage      decimal.Decimal
	PaidAmount         decimal.Decimal
}

// CreateOrder validates the line items, derives the financial
// breakdown and persists the order with its items atomically.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	if err := domain.ValidatePercentage("discount_percentage", input.DiscountPercentage); err != nil {
		return nil, err
	}
	if err := domain.ValidatePercentage("vat_percentage", input.VATPercentage); err != nil {
		return nil, err
	}
	if input.AdditionalCost.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if input.PaidAmount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	orderID := uc.idGen.Generate()

	items := make([]domain.LineItem, 0, len(input.Items))
	for _, in := range input.Items {
		item, err := domain.NewLineItem(in.ProductID, in.VariantID, in.Quantity, in.UnitPrice)
		if err != nil {
			return nil, err
		}
		item.ID = uc.idGen.Generate()
		item.OrderID = orderID
		items = append(items, item)
	}

	totals := domain.CalculateOrderTotals(items, input.DiscountPercentage, input.AdditionalCost, input.VATPercentage)

	due := totals.Total.Sub(input.PaidAmount)
	if due.IsNegative() {
		due = decimal.Zero
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:                 orderID,
		CustomerID:         input.CustomerID,
		Items:              items,
		Subtotal:           totals.Subtotal,
		DiscountPercentage: input.DiscountPercentage,
		DiscountAmount:     totals.DiscountAmount,
		AdditionalCost:     input.AdditionalCost,
		VATPercentage:      input.VATPercentage,
		VATAmount:          totals.VATAmount,
		Total:              totals.Total,
		PaidAmount:         input.PaidAmount,
		DueAmount:          due,
		Status:             "confirmed",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.orderRepo.Create(ctx, tx, order); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.OrdersCreated.Inc()
		uc.metrics.OrderTotal.Observe(order.Total.InexactFloat64())
	}

	return order, nil
}

// GetOrder retrieves an order by ID.
func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

// ListOrdersInput represents input for listing orders.
type ListOrdersInput struct {
	Limit  int
	Offset int
}

// ListOrders returns a page of orders plus the total count.
func (uc *OrderUseCase) ListOrders(ctx context.Context, input ListOrdersInput) ([]*domain.Order, int64, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.orderRepo.List(ctx, limit, offset)
}
