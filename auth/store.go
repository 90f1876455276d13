package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cookly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserStore interface {
	// Create returns ErrEmailInUse when the email is taken.
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, userID string) (models.User, error)
	UpdateDisplayName(ctx context.Context, userID, displayName string, at time.Time) (models.User, error)
	TouchLogin(ctx context.Context, userID string, at time.Time) error
}

type MongoUserStore struct {
	users *mongo.Collection
}

func NewMongoUserStore(users *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{users: users}
}

func (s *MongoUserStore) Create(ctx context.Context, user models.User) error {
	_, err := s.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailInUse
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoUserStore) FindByID(ctx context.Context, userID string) (models.User, error) {
	return s.findOne(ctx, bson.M{"userid": userID})
}

func (s *MongoUserStore) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user, ErrUserNotFound
	}
	if err != nil {
		return user, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *MongoUserStore) UpdateDisplayName(ctx context.Context, userID, displayName string, at time.Time) (models.User, error) {
	var user models.User
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.users.FindOneAndUpdate(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"displayName": displayName, "updated_at": at}},
		opts,
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user, ErrUserNotFound
	}
	if err != nil {
		return user, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

func (s *MongoUserStore) TouchLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := s.users.UpdateOne(ctx, bson.M{"userid": userID}, bson.M{"$set": bson.M{"last_login": at}})
	return err
}

type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]models.User // by userid
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) Create(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrEmailInUse
		}
	}
	s.users[user.UserID] = user
	return nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (s *MemoryUserStore) FindByID(_ context.Context, userID string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return u, ErrUserNotFound
	}
	return u, nil
}

func (s *MemoryUserStore) UpdateDisplayName(_ context.Context, userID, displayName string, at time.Time) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return u, ErrUserNotFound
	}
	u.DisplayName = displayName
	u.UpdatedAt = at
	s.users[userID] = u
	return u, nil
}

func (s *MemoryUserStore) TouchLogin(_ context.Context, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[userID]; ok {
		u.LastLogin = at
		s.users[userID] = u
	}
	return nil
}
