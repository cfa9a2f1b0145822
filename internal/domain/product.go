package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item the order form picks line items from.
type Product struct {
	ID        string
	Name      string
	SKU       string
	Category  string
	UnitPrice decimal.Decimal
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}
