package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const categoryCollectionName = "categories"

type mongoCategoryRepository struct {
	collection *mongo.Collection
	log        *logrus.Logger
}

func NewMongoCategoryRepository(db *mongo.Database, logger *logrus.Logger) domain.CategoryRepository {
	return &mongoCategoryRepository{
		collection: db.Collection(categoryCollectionName),
		log:        logger,
	}
}

func (r *mongoCategoryRepository) Insert(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	result, err := r.collection.InsertOne(ctx, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.log.Warnf("Attempted to create category with duplicate name: %s", category.Name)
			return nil, domain.NewDuplicateError(fmt.Sprintf("Category '%s' already exists.", category.Name))
		}
		r.log.Errorf("Failed to insert category '%s': %v", category.Name, err)
		return nil, fmt.Errorf("could not create category: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		category.ID = oid
	}
	r.log.Infof("Category created successfully with ID: %s, Name: %s", category.ID.Hex(), category.Name)
	return category, nil
}

func (r *mongoCategoryRepository) InsertMany(ctx context.Context, categories []*domain.Category) ([]*domain.Category, error) {
	docs := make([]interface{}, 0, len(categories))
	for _, c := range categories {
		docs = append(docs, c)
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.log.Warn("Bulk category insert rejected by unique index")
			return nil, domain.NewDuplicateError("A category with one of the given names already exists.")
		}
		r.log.Errorf("Failed to bulk insert %d categories: %v", len(categories), err)
		return nil, fmt.Errorf("could not create categories: %w", err)
	}

	for i, id := range result.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(categories) {
			categories[i].ID = oid
		}
	}
	r.log.Infof("Inserted %d categories", len(result.InsertedIDs))
	return categories, nil
}

func (r *mongoCategoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error) {
	var category domain.Category
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.log.Errorf("Failed to get category by ID %s: %v", id.Hex(), err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	return &category, nil
}

func (r *mongoCategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	var category domain.Category
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.log.Errorf("Failed to get category by name '%s': %v", name, err)
		return nil, fmt.Errorf("could not get category by name: %w", err)
	}
	return &category, nil
}

func (r *mongoCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []domain.Category{}
	if err = cursor.All(ctx, &categories); err != nil {
		r.log.Errorf("Failed to decode categories: %v", err)
		return nil, fmt.Errorf("could not decode categories: %w", err)
	}

	r.log.Infof("Retrieved %d categories", len(categories))
	return categories, nil
}

func (r *mongoCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*domain.Category, error) {
	update := bson.M{"$set": bson.M(fields)}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.log.Warnf("Attempted to update category %s to a duplicate name", id.Hex())
			return nil, domain.NewDuplicateError("A category with this name already exists.")
		}
		r.log.Errorf("Failed to update category ID %s: %v", id.Hex(), err)
		return nil, fmt.Errorf("could not update category: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}

	r.log.Infof("Category updated successfully with ID: %s", id.Hex())
	return r.GetByID(ctx, id)
}

func (r *mongoCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Errorf("Failed to delete category ID %s: %v", id.Hex(), err)
		return false, fmt.Errorf("could not delete category: %w", err)
	}
	if result.DeletedCount == 0 {
		r.log.Warnf("Attempted to delete non-existent category ID %s", id.Hex())
		return false, nil
	}

	r.log.Infof("Category deleted successfully with ID: %s", id.Hex())
	return true, nil
}
