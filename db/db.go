package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// UserCollection also carries each user's pantry array.
	UserCollection       *mongo.Collection
	RatingsCollection    *mongo.Collection
	CookEventsCollection *mongo.Collection
	StreaksCollection    *mongo.Collection
	Client               *mongo.Client
)

// Connect opens the MongoDB client and binds the collections.
func Connect(ctx context.Context, uri, dbName string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("ping MongoDB: %w", err)
	}

	Client = client
	database := client.Database(dbName)
	UserCollection = database.Collection("users")
	RatingsCollection = database.Collection("recipeRatings")
	CookEventsCollection = database.Collection("cookEvents")
	StreaksCollection = database.Collection("userStreaks")

	if err := EnsureIndexes(ctx); err != nil {
		log.Printf("[db] index setup failed: %v", err)
	}
	return nil
}

// EnsureIndexes creates the indexes the stores rely on. Safe to call repeatedly.
func EnsureIndexes(ctx context.Context) error {
	_, err := UserCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userid", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = RatingsCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "recipeId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("recipeRatings index: %w", err)
	}

	_, err = CookEventsCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("cookEvents index: %w", err)
	}
	return nil
}

func Disconnect(ctx context.Context) {
	if Client == nil {
		return
	}
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}
}
