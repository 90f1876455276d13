package models

import "time"

type StoreID string

// Store is a grocery store we compare prices across.
type Store struct {
	ID          StoreID `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	LogoURL     string  `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	AccentColor string  `json:"accentColor,omitempty" bson:"accentColor,omitempty"`
}

// StoreProduct is one catalog row: the product a store sells for an ingredient key.
type StoreProduct struct {
	StoreID       StoreID `json:"storeId" bson:"storeId"`
	IngredientKey string  `json:"ingredientKey" bson:"ingredientKey"`
	ProductName   string  `json:"productName" bson:"productName"`
	UnitPrice     float64 `json:"unitPrice" bson:"unitPrice"`
	UnitSize      string  `json:"unitSize" bson:"unitSize"`
}

// PriceBreakdownItem is the priced line for one recipe ingredient.
type PriceBreakdownItem struct {
	IngredientLabel string  `json:"ingredientLabel"`
	ProductName     string  `json:"productName"`
	UnitSize        string  `json:"unitSize"`
	UnitPrice       float64 `json:"unitPrice"`
	Fallback        bool    `json:"fallback,omitempty"`
}

// StorePriceEstimate is derived per request and never persisted.
type StorePriceEstimate struct {
	Store      Store                `json:"store"`
	TotalPrice float64              `json:"totalPrice"`
	Items      []PriceBreakdownItem `json:"items"`
	IsCheapest bool                 `json:"isCheapest"`
}

// PantryItem is an ingredient the user already owns.
type PantryItem struct {
	IngredientKey string    `json:"ingredientKey" bson:"ingredientKey"` // normalized, e.g. "cheddar cheese"
	Label         string    `json:"label" bson:"label"`                 // as typed, e.g. "Cheddar Cheese"
	AddedAt       time.Time `json:"addedAt" bson:"addedAt"`
}
