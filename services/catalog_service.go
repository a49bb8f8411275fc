package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/models"
)

// CatalogService is the read/update layer over the products collection.
// Every call hits the store directly; there is no cache between them.
type CatalogService struct {
	products *mongo.Collection
}

func NewCatalogService(products *mongo.Collection) *CatalogService {
	return &CatalogService{products: products}
}

// ListAll returns the whole catalog in the store's natural order.
func (s *CatalogService) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.find(ctx, bson.M{})
}

// GetByID returns one product, or ErrNotFound.
func (s *CatalogService) GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var product models.Product
	err := s.products.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, storeErr("get product", err)
	}
	return product, nil
}

// ListFeatured returns the products flagged for the storefront's front page.
func (s *CatalogService) ListFeatured(ctx context.Context) ([]models.Product, error) {
	return s.find(ctx, bson.M{"featured": true})
}

// Search returns products whose name, brand, description or category contains
// query, case-insensitively. The predicate runs here rather than as a store
// regex; an empty query matches everything.
func (s *CatalogService) Search(ctx context.Context, query string) ([]models.Product, error) {
	all, err := s.find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := make([]models.Product, 0, len(all))
	for _, p := range all {
		if matchesQuery(p, needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// matchesQuery expects needle already lower-cased.
func matchesQuery(p models.Product, needle string) bool {
	for _, field := range []string{p.Name, p.Brand, p.Description, p.Category} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// ListByCategory filters on exact category equality. The filter is a plain
// equality match with no collation, so it is case-sensitive: "floral" does
// not match "Floral".
func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.find(ctx, bson.M{"category": category})
}

// Update merges the given fields into the product and returns the updated
// document, or ErrNotFound. Fields are set as supplied; callers can blank
// values the storefront expects to be present.
func (s *CatalogService) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.Product, error) {
	// The id is store-assigned and immutable.
	delete(fields, "_id")
	delete(fields, "id")
	if len(fields) == 0 {
		return s.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Product
	err := s.products.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, storeErr("update product", err)
	}
	return updated, nil
}

func (s *CatalogService) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := s.products.Find(ctx, filter)
	if err != nil {
		return nil, storeErr("find products", err)
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, storeErr("decode products", err)
	}
	return products, nil
}
