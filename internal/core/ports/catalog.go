package ports

import (
	"context"

	"github.com/lamare/creator-studio/internal/core/domain"
)

// ProductRepository persists the trending product catalog.
type ProductRepository interface {
	// List returns products in the given category. An empty category or
	// "All" returns every product.
	List(ctx context.Context, category string) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, products []domain.Product) error
}
