package db

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Connect establishes a MongoDB client connection and verifies it with a ping.
func Connect(uri string, logger *logrus.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer pingCancel()
	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("Successfully connected and pinged MongoDB")
	return client, nil
}

// EnsureIndexes creates the unique name indexes on both collections. The
// service layer pre-checks duplicates for friendly errors, but these indexes
// are the authoritative guard against concurrent check-then-act races.
func EnsureIndexes(ctx context.Context, database *mongo.Database, logger *logrus.Logger) error {
	uniqueName := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	for _, collection := range []string{"categories", "products"} {
		if _, err := database.Collection(collection).Indexes().CreateOne(ctx, uniqueName); err != nil {
			return fmt.Errorf("failed to create unique name index on %s: %w", collection, err)
		}
		logger.Infof("Ensured unique name index on collection %s", collection)
	}
	return nil
}
