package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopdesk/shopdesk/internal/domain"
	"github.com/shopdesk/shopdesk/internal/usecase"
)

// OrderRepository implements usecase.OrderRepository.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

const insertOrderSQL = `
INSERT INTO orders (
    id, customer_id, subtotal, discount_percentage, discount_amount,
    additional_cost, vat_percentage, vat_amount, total_amount,
    paid_amount, due_amount, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

const insertOrderItemSQL = `
INSERT INTO order_items (
    id, order_id, product_id, variant_id, quantity, unit_price, line_total
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Create inserts an order and its line items inside the caller's
// transaction.
func (r *OrderRepository) Create(ctx context.Context, tx usecase.Transaction, order *domain.Order) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, insertOrderSQL,
		order.ID,
		order.CustomerID,
		decimalToNumeric(order.Subtotal),
		decimalToNumeric(order.DiscountPercentage),
		decimalToNumeric(order.DiscountAmount),
		decimalToNumeric(order.AdditionalCost),
		decimalToNumeric(order.VATPercentage),
		decimalToNumeric(order.VATAmount),
		decimalToNumeric(order.Total),
		decimalToNumeric(order.PaidAmount),
		decimalToNumeric(order.DueAmount),
		order.Status,
		timeToPgTimestamptz(order.CreatedAt),
		timeToPgTimestamptz(order.UpdatedAt),
	)
	if err != nil {
		return err
	}

	for _, item := range order.Items {
		_, err := pgxTx.Exec(ctx, insertOrderItemSQL,
			item.ID,
			order.ID,
			item.ProductID,
			item.VariantID,
			item.Quantity,
			decimalToNumeric(item.UnitPrice),
			decimalToNumeric(item.LineTotal),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

const selectOrderSQL = `
SELECT id, customer_id, subtotal, discount_percentage, discount_amount,
       additional_cost, vat_percentage, vat_amount, total_amount,
       paid_amount, due_amount, quantity, unit_price, status,
       created_at, updated_at
FROM orders
WHERE id = $1`

// GetByID retrieves an order with its line items. NULL financial
// columns read back as zero here; use GetRecord when absence matters.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	rec, order, err := r.scanOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Subtotal = domain.DecimalOrZero(rec.Subtotal)
	order.DiscountPercentage = domain.DecimalOrZero(rec.DiscountPercentage)
	order.DiscountAmount = domain.DecimalOrZero(rec.DiscountAmount)
	order.VATPercentage = domain.DecimalOrZero(rec.VATPercentage)
	order.VATAmount = domain.DecimalOrZero(rec.VATAmount)
	order.Total = domain.DecimalOrZero(rec.TotalAmount)
	order.PaidAmount = domain.DecimalOrZero(rec.PaidAmount)
	order.DueAmount = domain.DecimalOrZero(rec.DueAmount)
	order.Items = rec.Items

	return order, nil
}

// GetRecord retrieves an order in its tolerant form for invoice
// reconciliation, preserving NULL as nil.
func (r *OrderRepository) GetRecord(ctx context.Context, id string) (domain.OrderRecord, error) {
	rec, _, err := r.scanOrder(ctx, id)
	if err != nil {
		return domain.OrderRecord{}, err
	}

	return rec, nil
}

// scanOrder reads one order row plus items, returning both the
// nullable record and the non-financial order fields.
func (r *OrderRepository) scanOrder(ctx context.Context, id string) (domain.OrderRecord, *domain.Order, error) {
	var (
		rec   domain.OrderRecord
		order domain.Order

		subtotal, discountPct, discountAmt         pgtype.Numeric
		additionalCost, vatPct, vatAmt             pgtype.Numeric
		totalAmt, paidAmt, dueAmt, legacyUnitPrice pgtype.Numeric
		legacyQuantity                             pgtype.Int8
		createdAt, updatedAt                       pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, selectOrderSQL, id).Scan(
		&order.ID, &order.CustomerID,
		&subtotal, &discountPct, &discountAmt,
		&additionalCost, &vatPct, &vatAmt,
		&totalAmt, &paidAmt, &dueAmt,
		&legacyQuantity, &legacyUnitPrice,
		&order.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.OrderRecord{}, nil, domain.ErrOrderNotFound
		}
		return domain.OrderRecord{}, nil, err
	}

	order.AdditionalCost = numericToDecimal(additionalCost)
	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	rec.ID = order.ID
	rec.Subtotal = numericToDecimalPtr(subtotal)
	rec.DiscountPercentage = numericToDecimalPtr(discountPct)
	rec.DiscountAmount = numericToDecimalPtr(discountAmt)
	rec.VATPercentage = numericToDecimalPtr(vatPct)
	rec.VATAmount = numericToDecimalPtr(vatAmt)
	rec.TotalAmount = numericToDecimalPtr(totalAmt)
	rec.PaidAmount = numericToDecimalPtr(paidAmt)
	rec.DueAmount = numericToDecimalPtr(dueAmt)
	rec.UnitPrice = numericToDecimalPtr(legacyUnitPrice)
	if legacyQuantity.Valid {
		q := legacyQuantity.Int64
		rec.Quantity = &q
	}

	items, err := r.listItems(ctx, order.ID)
	if err != nil {
		return domain.OrderRecord{}, nil, err
	}
	rec.Items = items

	return rec, &order, nil
}

const selectOrderItemsSQL = `
SELECT id, order_id, product_id, variant_id, quantity, unit_price, line_total
FROM order_items
WHERE order_id = $1
ORDER BY id`

func (r *OrderRepository) listItems(ctx context.Context, orderID string) ([]domain.LineItem, error) {
	rows, err := r.pool.Query(ctx, selectOrderItemsSQL, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.LineItem
	for rows.Next() {
		var (
			item                 domain.LineItem
			variantID            pgtype.Text
			unitPrice, lineTotal pgtype.Numeric
		)

		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&variantID, &item.Quantity, &unitPrice, &lineTotal)
		if err != nil {
			return nil, err
		}

		if variantID.Valid {
			v := variantID.String
			item.VariantID = &v
		}
		item.UnitPrice = numericToDecimal(unitPrice)
		item.LineTotal = numericToDecimal(lineTotal)

		items = append(items, item)
	}

	return items, rows.Err()
}

const listOrdersSQL = `
SELECT id, customer_id, subtotal, discount_percentage, discount_amount,
       additional_cost, vat_percentage, vat_amount, total_amount,
       paid_amount, due_amount, status, created_at, updated_at
FROM orders
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

const countOrdersSQL = `
SELECT count(*) FROM orders`

// List returns a page of order summaries newest first plus the total
// count. Line items are not loaded for listings.
func (r *OrderRepository) List(ctx context.Context, limit, offset int) ([]*domain.Order, int64, error) {
	rows, err := r.pool.Query(ctx, listOrdersSQL, int32(limit), int32(offset))
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		var (
			order                              domain.Order
			subtotal, discountPct, discountAmt pgtype.Numeric
			additionalCost, vatPct, vatAmt     pgtype.Numeric
			totalAmt, paidAmt, dueAmt          pgtype.Numeric
			createdAt, updatedAt               pgtype.Timestamptz
		)

		err := rows.Scan(&order.ID, &order.CustomerID,
			&subtotal, &discountPct, &discountAmt,
			&additionalCost, &vatPct, &vatAmt,
			&totalAmt, &paidAmt, &dueAmt,
			&order.Status, &createdAt, &updatedAt)
		if err != nil {
			return nil, 0, err
		}

		order.Subtotal = numericToDecimal(subtotal)
		order.DiscountPercentage = numericToDecimal(discountPct)
		order.DiscountAmount = numericToDecimal(discountAmt)
		order.AdditionalCost = numericToDecimal(additionalCost)
		order.VATPercentage = numericToDecimal(vatPct)
		order.VATAmount = numericToDecimal(vatAmt)
		order.Total = numericToDecimal(totalAmt)
		order.PaidAmount = numericToDecimal(paidAmt)
		order.DueAmount = numericToDecimal(dueAmt)
		order.CreatedAt = createdAt.Time
		order.UpdatedAt = updatedAt.Time

		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countOrdersSQL).Scan(&total); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}
