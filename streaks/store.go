package streaks

import (
	"context"
	"errors"
	"sync"

	"cookly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	events  *mongo.Collection
	streaks *mongo.Collection
}

func NewMongoStore(events, streaks *mongo.Collection) *MongoStore {
	return &MongoStore{events: events, streaks: streaks}
}

func (s *MongoStore) AddEvent(ctx context.Context, event models.CookEvent) error {
	_, err := s.events.InsertOne(ctx, event)
	return err
}

func (s *MongoStore) Get(ctx context.Context, userID string) (models.UserStreak, error) {
	var streak models.UserStreak
	err := s.streaks.FindOne(ctx, bson.M{"_id": userID}).Decode(&streak)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return streak, ErrNotFound
	}
	return streak, err
}

func (s *MongoStore) Put(ctx context.Context, streak models.UserStreak) error {
	_, err := s.streaks.ReplaceOne(ctx, bson.M{"_id": streak.UserID}, streak, options.Replace().SetUpsert(true))
	return err
}

type MemoryStore struct {
	mu      sync.Mutex
	Events  []models.CookEvent
	streaks map[string]models.UserStreak
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{streaks: make(map[string]models.UserStreak)}
}

func (s *MemoryStore) AddEvent(_ context.Context, event models.CookEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, event)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, userID string) (models.UserStreak, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	streak, ok := s.streaks[userID]
	if !ok {
		return streak, ErrNotFound
	}
	return streak, nil
}

func (s *MemoryStore) Put(_ context.Context, streak models.UserStreak) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.streaks[streak.UserID] = streak
	return nil
}
