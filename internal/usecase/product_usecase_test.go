package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/domain"
	"github.com/shopdesk/shopdesk/internal/usecase"
	"github.com/shopdesk/shopdesk/internal/usecase/mocks"
)

func TestProductUseCase_CreateProduct(t *testing.T) {
	repo := mocks.NewMockProductRepository()
	uc := usecase.NewProductUseCase(repo, mocks.NewMockIDGenerator())

	product, err := uc.CreateProduct(context.Background(), usecase.CreateProductInput{
		Name:      "Desk Lamp",
		SKU:       "DL-100",
		Category:  "lighting",
		UnitPrice: decimal.RequireFromString("24.90"),
		Stock:     12,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.ID == "" {
		t.Error("expected a generated product ID")
	}

	_, err = uc.CreateProduct(context.Background(), usecase.CreateProductInput{
		Name:      "Broken",
		UnitPrice: decimal.RequireFromString("-1"),
	})
	if !errors.Is(err, domain.ErrInvalidUnitPrice) {
		t.Fatalf("error = %v, want ErrInvalidUnitPrice", err)
	}
}

func TestProductUseCase_ListProducts_FilterPassthrough(t *testing.T) {
	repo := mocks.NewMockProductRepository()

	var gotFilter domain.ProductFilter
	repo.ListFunc = func(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
		gotFilter = filter
		return nil, nil
	}

	uc := usecase.NewProductUseCase(repo, mocks.NewMockIDGenerator())
	_, err := uc.ListProducts(context.Background(), domain.ProductFilter{Category: "lighting", Limit: 5000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotFilter.Category != "lighting" {
		t.Errorf("category = %q, want lighting", gotFilter.Category)
	}
	if gotFilter.Limit != 100 {
		t.Errorf("limit = %d, want pagination cap of 100", gotFilter.Limit)
	}
}
