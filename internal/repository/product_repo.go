package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productCollectionName = "products"

type mongoProductRepository struct {
	collection *mongo.Collection
	log        *logrus.Logger
}

func NewMongoProductRepository(db *mongo.Database, logger *logrus.Logger) domain.ProductRepository {
	return &mongoProductRepository{
		collection: db.Collection(productCollectionName),
		log:        logger,
	}
}

func (r *mongoProductRepository) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.log.Warnf("Attempted to create product with duplicate name: %s", product.Name)
			return nil, domain.NewDuplicateError("A product with this name already exists.")
		}
		r.log.Errorf("Failed to insert product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	r.log.Infof("Product created successfully with ID: %s, Name: %s", product.ID.Hex(), product.Name)
	return product, nil
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	var product domain.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.log.Errorf("Failed to get product by ID %s: %v", id.Hex(), err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	return &product, nil
}

func (r *mongoProductRepository) GetByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]domain.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"category": categoryID})
	if err != nil {
		r.log.Errorf("Failed to list products for category %s: %v", categoryID.Hex(), err)
		return nil, fmt.Errorf("could not list products by category: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		r.log.Errorf("Failed to decode products for category %s: %v", categoryID.Hex(), err)
		return nil, fmt.Errorf("could not decode products: %w", err)
	}
	return products, nil
}

func (r *mongoProductRepository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	var product domain.Product
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.log.Errorf("Failed to find product by name '%s': %v", name, err)
		return nil, fmt.Errorf("could not find product by name: %w", err)
	}
	return &product, nil
}

func (r *mongoProductRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.Product, int64, error) {
	filter := bson.M{}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		r.log.Errorf("Failed to count products: %v", err)
		return nil, 0, fmt.Errorf("could not count products: %w", err)
	}

	findOptions := options.Find()
	if opts.Skip > 0 {
		findOptions.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOptions.SetLimit(opts.Limit)
	}
	if opts.SortBy != "" {
		direction := 1
		if strings.EqualFold(opts.Order, "desc") {
			direction = -1
		}
		findOptions.SetSort(bson.D{{Key: opts.SortBy, Value: direction}})
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		r.log.Errorf("Failed to list products: %v", err)
		return nil, 0, fmt.Errorf("could not list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		r.log.Errorf("Failed to decode products: %v", err)
		return nil, 0, fmt.Errorf("could not decode products: %w", err)
	}

	r.log.Infof("Retrieved %d of %d products", len(products), totalCount)
	return products, totalCount, nil
}

func (r *mongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*domain.Product, error) {
	update := bson.M{"$set": bson.M(fields)}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.log.Warnf("Attempted to update product %s to a duplicate name", id.Hex())
			return nil, domain.NewDuplicateError("A product with this name already exists.")
		}
		r.log.Errorf("Failed to update product ID %s: %v", id.Hex(), err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}

	r.log.Infof("Product updated successfully with ID: %s", id.Hex())
	return r.GetByID(ctx, id)
}

func (r *mongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Errorf("Failed to delete product ID %s: %v", id.Hex(), err)
		return false, fmt.Errorf("could not delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		r.log.Warnf("Attempted to delete non-existent product ID %s", id.Hex())
		return false, nil
	}

	r.log.Infof("Product deleted successfully with ID: %s", id.Hex())
	return true, nil
}

func (r *mongoProductRepository) DeleteByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"category": categoryID})
	if err != nil {
		r.log.Errorf("Failed to delete products for category %s: %v", categoryID.Hex(), err)
		return 0, fmt.Errorf("could not delete products by category: %w", err)
	}

	r.log.Infof("Deleted %d products for category %s", result.DeletedCount, categoryID.Hex())
	return result.DeletedCount, nil
}
