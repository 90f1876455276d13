package ratings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"cookly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) Upsert(ctx context.Context, rating models.RecipeRating) error {
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rating.ID}, rating, options.Replace().SetUpsert(true))
	return err
}

func (s *MongoStore) ListByRecipe(ctx context.Context, recipeID string) ([]models.RecipeRating, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"recipeId": recipeID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.RecipeRating
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode ratings: %w", err)
	}
	return out, nil
}

func (s *MongoStore) Find(ctx context.Context, userID, recipeID string) (models.RecipeRating, error) {
	var r models.RecipeRating
	err := s.coll.FindOne(ctx, bson.M{"_id": DocID(userID, recipeID)}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return r, ErrNotFound
	}
	return r, err
}

type MemoryStore struct {
	mu   sync.Mutex
	docs map[string]models.RecipeRating
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]models.RecipeRating)}
}

func (s *MemoryStore) Upsert(_ context.Context, rating models.RecipeRating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[rating.ID] = rating
	return nil
}

func (s *MemoryStore) ListByRecipe(_ context.Context, recipeID string) ([]models.RecipeRating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.RecipeRating
	for _, r := range s.docs {
		if r.RecipeID == recipeID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Find(_ context.Context, userID, recipeID string) (models.RecipeRating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.docs[DocID(userID, recipeID)]
	if !ok {
		return r, ErrNotFound
	}
	return r, nil
}
