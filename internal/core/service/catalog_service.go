package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lamare/creator-studio/internal/core/domain"
	"github.com/lamare/creator-studio/internal/core/ports"
)

// CatalogService serves the trending product catalog. The repository is
// seeded with the built-in sample set on first start, and reads fail open
// to that same set so the scraper view always has products to show.
type CatalogService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

// EnsureSeed inserts the sample products when the catalog is empty.
func (s *CatalogService) EnsureSeed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}
	if err := s.repo.InsertMany(ctx, domain.SampleProducts()); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	s.log.Info().Msg("product catalog seeded")
	return nil
}

// List returns the catalog filtered by category ("" or "All" means no
// filter). Repository failure degrades to the built-in samples.
func (s *CatalogService) List(ctx context.Context, category string) []domain.Product {
	products, err := s.repo.List(ctx, category)
	if err != nil {
		s.log.Warn().Err(err).Msg("catalog unavailable, serving samples")
		return filterSamples(category)
	}
	return products
}

// Find returns a single product by id, falling back to the sample set.
func (s *CatalogService) Find(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrProductNotFound) {
		for _, sample := range domain.SampleProducts() {
			if sample.ID == id {
				return &sample, nil
			}
		}
	}
	return nil, domain.ErrProductNotFound
}

func filterSamples(category string) []domain.Product {
	samples := domain.SampleProducts()
	if category == "" || category == "All" {
		return samples
	}
	out := make([]domain.Product, 0, len(samples))
	for _, p := range samples {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
