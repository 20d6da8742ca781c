// Package mongodb implements the store interfaces on top of MongoDB.
// Documents live in three flat collections (customers, products, feedback),
// each keyed by its 6-digit natural id field with a unique index, alongside
// the store-assigned _id.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/FitFinder/fitfinder-backend/config"
	apperrors "github.com/FitFinder/fitfinder-backend/errors"
	"github.com/FitFinder/fitfinder-backend/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	customersCollection = "customers"
	productsCollection  = "products"
	feedbackCollection  = "feedback"
)

// Connect establishes a MongoDB connection, verifies it with a ping, and
// returns the database handle.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	log := logger.GetLogger()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeoutSeconds)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Infow("Connected to MongoDB",
		"uri", logger.MaskConnectionString(cfg.URI),
		"database", cfg.Database,
	)

	return client.Database(cfg.Database), nil
}

// insertErr maps an insert failure to the error taxonomy: a violated
// unique index becomes a conflict, anything else a database error.
func insertErr(err error, message, detail string) error {
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.NewConflictError(message, detail)
	}
	return apperrors.NewDatabaseError(err)
}

// EnsureIndexes creates the unique natural-key indexes on all three
// collections. Safe to call on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := []struct {
		collection string
		field      string
	}{
		{customersCollection, "user_id"},
		{productsCollection, "item_id"},
		{feedbackCollection, "review_id"},
	}

	for _, idx := range indexes {
		_, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: idx.field, Value: 1}},
			Options: unique,
		})
		if err != nil {
			return fmt.Errorf("create index on %s.%s: %w", idx.collection, idx.field, err)
		}
	}

	// Feedback is also queried and cascade-deleted by its parents' keys.
	for _, field := range []string{"customer_id", "product_id"} {
		_, err := db.Collection(feedbackCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: field, Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("create index on %s.%s: %w", feedbackCollection, field, err)
		}
	}

	return nil
}
