package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryRepository is the persistence contract for categories. Lookups
// return (nil, nil) on a miss; only infrastructure failures are errors.
type CategoryRepository interface {
	Insert(ctx context.Context, category *Category) (*Category, error)
	InsertMany(ctx context.Context, categories []*Category) ([]*Category, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
