package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/domain"
)

// ProductUseCase handles product catalog logic.
type ProductUseCase struct {
	productRepo ProductRepository
	idGen       IDGenerator
}

// NewProductUseCase creates a new ProductUseCase.
func NewProductUseCase(productRepo ProductRepository, idGen IDGenerator) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		idGen:       idGen,
	}
}

// CreateProductInput represents input for creating a product.
type CreateProductInput struct {
	Name      string
	SKU       string
	Category  string
	UnitPrice decimal.Decimal
	Stock     int64
}

// CreateProduct creates a new product.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if input.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidUnitPrice
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		SKU:       input.SKU,
		Category:  input.Category,
		UnitPrice: input.UnitPrice,
		Stock:     input.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID.
func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// ListProducts lists products applying the given filter.
func (uc *ProductUseCase) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)
	return uc.productRepo.List(ctx, filter)
}
