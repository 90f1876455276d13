package routes

import (
	"cookly/auth"
	"cookly/pantry"
	"cookly/pricing"
	"cookly/ratelim"
	"cookly/ratings"
	"cookly/recipes"
	"cookly/search"
	"cookly/streaks"

	"github.com/julienschmidt/httprouter"
)

// Handlers bundles every route group's handler.
type Handlers struct {
	Recipes *recipes.Handler
	Search  *search.Handler
	Pantry  *pantry.Handler
	Pricing *pricing.Handler
	Ratings *ratings.Handler
	Streaks *streaks.Handler
	Auth    *auth.Handler
}

func RoutesWrapper(router *httprouter.Router, h Handlers, rateLimiter *ratelim.RateLimiter) {
	AddRecipeRoutes(router, h.Recipes)
	AddSearchRoutes(router, h.Search)
	AddPantryRoutes(router, h.Pantry, rateLimiter)
	AddPricingRoutes(router, h.Pricing)
	AddRatingRoutes(router, h.Ratings, rateLimiter)
	AddStreakRoutes(router, h.Streaks, rateLimiter)
	AddAuthRoutes(router, h.Auth, rateLimiter)
}
