package pantry

import (
	"context"
	"errors"
	"fmt"

	"cookly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps each pantry as the "pantry" array on the user document.
type MongoStore struct {
	users *mongo.Collection
}

func NewMongoStore(users *mongo.Collection) *MongoStore {
	return &MongoStore{users: users}
}

func (s *MongoStore) Get(ctx context.Context, userID string) ([]models.PantryItem, error) {
	if userID == "" {
		return []models.PantryItem{}, nil
	}

	var doc struct {
		Pantry []models.PantryItem `bson:"pantry"`
	}
	opts := options.FindOne().SetProjection(bson.M{"pantry": 1})
	err := s.users.FindOne(ctx, bson.M{"userid": userID}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []models.PantryItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get pantry: %w", err)
	}
	if doc.Pantry == nil {
		doc.Pantry = []models.PantryItem{}
	}
	return doc.Pantry, nil
}

func (s *MongoStore) Add(ctx context.Context, userID string, item models.PantryItem) error {
	if userID == "" {
		return nil
	}
	item = stamp(item)

	filter := bson.M{
		"userid":               userID,
		"pantry.ingredientKey": bson.M{"$ne": item.IngredientKey},
	}
	update := bson.M{"$push": bson.M{"pantry": item}}
	if _, err := s.users.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("add to pantry: %w", err)
	}
	return nil
}

func (s *MongoStore) Remove(ctx context.Context, userID, ingredientKey string) error {
	if userID == "" {
		return nil
	}
	update := bson.M{"$pull": bson.M{"pantry": bson.M{"ingredientKey": ingredientKey}}}
	if _, err := s.users.UpdateOne(ctx, bson.M{"userid": userID}, update); err != nil {
		return fmt.Errorf("remove from pantry: %w", err)
	}
	return nil
}
