package models

import "time"

type User struct {
	UserID       string       `json:"userid" bson:"userid"`
	Email        string       `json:"email" bson:"email"`
	DisplayName  string       `json:"displayName" bson:"displayName"`
	PasswordHash string       `json:"-" bson:"password_hash"`
	Pantry       []PantryItem `json:"pantry,omitempty" bson:"pantry,omitempty"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" bson:"updated_at"`
	LastLogin    time.Time    `json:"last_login" bson:"last_login"`
}

// UserProfileResponse is what the profile endpoints return.
type UserProfileResponse struct {
	UserID      string    `json:"userid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u User) Profile() UserProfileResponse {
	return UserProfileResponse{
		UserID:      u.UserID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

// RecipeRating is one user's star rating for a recipe.
type RecipeRating struct {
	ID        string    `json:"-" bson:"_id"` // "<userId>_<recipeId>"
	UserID    string    `json:"userId" bson:"userId"`
	RecipeID  string    `json:"recipeId" bson:"recipeId"`
	Rating    int       `json:"rating" bson:"rating"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type RatingSummary struct {
	RecipeID      string  `json:"recipeId"`
	AverageRating float64 `json:"averageRating"`
	RatingCount   int     `json:"ratingCount"`
	UserRating    *int    `json:"userRating,omitempty"`
}

// CookEvent is an append-only history row written every time a user cooks a recipe.
type CookEvent struct {
	EventID   string    `json:"eventId" bson:"eventId"`
	UserID    string    `json:"userId" bson:"userId"`
	RecipeID  string    `json:"recipeId" bson:"recipeId"`
	Rating    int       `json:"rating" bson:"rating"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type UserStreak struct {
	UserID        string    `json:"userId" bson:"_id"`
	CurrentStreak int       `json:"currentStreak" bson:"currentStreak"`
	LongestStreak int       `json:"longestStreak" bson:"longestStreak"`
	LastCookDate  time.Time `json:"lastCookDate" bson:"lastCookDate"`
	TotalCooks    int       `json:"totalCooks" bson:"totalCooks"`
}
