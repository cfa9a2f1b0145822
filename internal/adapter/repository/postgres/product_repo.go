package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopdesk/shopdesk/internal/domain"
)

// ProductRepository implements usecase.ProductRepository.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const insertProductSQL = `
INSERT INTO products (id, name, sku, category, unit_price, stock, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// Create inserts a product.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	_, err := r.pool.Exec(ctx, insertProductSQL,
		product.ID,
		product.Name,
		product.SKU,
		product.Category,
		decimalToNumeric(product.UnitPrice),
		product.Stock,
		timeToPgTimestamptz(product.CreatedAt),
		timeToPgTimestamptz(product.UpdatedAt),
	)

	return err
}

const selectProductSQL = `
SELECT id, name, sku, category, unit_price, stock, created_at, updated_at
FROM products
WHERE id = $1`

// GetByID retrieves a product by ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, selectProductSQL, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}

const listProductsSQL = `
SELECT id, name, sku, category, unit_price, stock, created_at, updated_at
FROM products
WHERE ($1 = '' OR category = $1)
  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR sku ILIKE '%' || $2 || '%')
ORDER BY name
LIMIT $3 OFFSET $4`

// List lists products matching the filter.
func (r *ProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	rows, err := r.pool.Query(ctx, listProductsSQL,
		filter.Category, filter.Search, int32(filter.Limit), int32(filter.Offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		product              domain.Product
		unitPrice            pgtype.Numeric
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&product.ID, &product.Name, &product.SKU, &product.Category,
		&unitPrice, &product.Stock, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	product.UnitPrice = numericToDecimal(unitPrice)
	product.CreatedAt = createdAt.Time
	product.UpdatedAt = updatedAt.Time

	return &product, nil
}
