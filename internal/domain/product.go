package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListOptions is the pagination/sorting window for product listings.
// A zero Limit means "no limit"; an empty SortBy means natural storage order.
type ListOptions struct {
	Skip   int64
	Limit  int64
	SortBy string
	Order  string
}

// ProductRepository is the persistence contract for products. Lookups return
// (nil, nil) on a miss; only infrastructure failures are errors.
type ProductRepository interface {
	Insert(ctx context.Context, product *Product) (*Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Product, error)
	GetByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]Product, error)
	FindByName(ctx context.Context, name string) (*Product, error)
	List(ctx context.Context, opts ListOptions) ([]Product, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error)
}
