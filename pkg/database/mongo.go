package database

import (
	"context"
	"fmt"
	"time"

	"places-api/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	placesCollection = "places"
	usersCollection  = "users"
)

// Connect opens a MongoDB client and pings the primary. The caller owns the
// returned client and must Disconnect it.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	timeout := time.Duration(cfg.MongoTimeoutSec) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// HealthCheck pings the primary with a short deadline.
func HealthCheck(ctx context.Context, client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the indexes the API relies on. The unique index on
// users.email is what makes concurrent signups with one email safe.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users.email index: %w", err)
	}

	_, err = db.Collection(placesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "creator", Value: 1}},
		Options: options.Index().SetName("creator"),
	})
	if err != nil {
		return fmt.Errorf("create places.creator index: %w", err)
	}
	return nil
}

// CollectionCounts returns the document count of each collection.
func CollectionCounts(ctx context.Context, db *mongo.Database) (map[string]int64, error) {
	counts := make(map[string]int64, 2)
	for _, name := range []string{usersCollection, placesCollection} {
		n, err := db.Collection(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}

// Truncate removes every document from both collections. Indexes stay.
func Truncate(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{usersCollection, placesCollection} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("truncate %s: %w", name, err)
		}
	}
	return nil
}
