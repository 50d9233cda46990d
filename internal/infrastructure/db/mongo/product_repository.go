package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lamare/creator-studio/internal/core/domain"
)

const collectionProducts = "products"

// ProductRepository persists the trending product catalog in MongoDB.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(collectionProducts)}
}

type mongoProduct struct {
	ID         string  `bson:"_id"`
	Name       string  `bson:"name"`
	Price      int64   `bson:"price"`
	Commission int64   `bson:"commission"`
	Sales      int     `bson:"sales"`
	Rating     float64 `bson:"rating"`
	Category   string  `bson:"category"`
	Image      string  `bson:"image"`
	URL        string  `bson:"url,omitempty"`
}

// List returns products in the given category, in natural order. An empty
// category or "All" disables the filter.
func (r *ProductRepository) List(ctx context.Context, category string) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if category != "" && category != "All" {
		filter["category"] = category
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []mongoProduct
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, toDomainProduct(d))
	}
	return products, nil
}

// FindByID retrieves a single product.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d mongoProduct
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	p := toDomainProduct(d)
	return &p, nil
}

// Count returns the catalog size.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

// InsertMany seeds the catalog.
func (r *ProductRepository) InsertMany(ctx context.Context, products []domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, mongoProduct{
			ID:         p.ID,
			Name:       p.Name,
			Price:      p.Price,
			Commission: p.Commission,
			Sales:      p.Sales,
			Rating:     p.Rating,
			Category:   p.Category,
			Image:      p.Image,
			URL:        p.URL,
		})
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

func toDomainProduct(d mongoProduct) domain.Product {
	return domain.Product{
		ID:         d.ID,
		Name:       d.Name,
		Price:      d.Price,
		Commission: d.Commission,
		Sales:      d.Sales,
		Rating:     d.Rating,
		Category:   d.Category,
		Image:      d.Image,
		URL:        d.URL,
	}
}
