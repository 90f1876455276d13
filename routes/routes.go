package routes

import (
	"cookly/auth"
	"cookly/middleware"
	"cookly/pantry"
	"cookly/pricing"
	"cookly/ratelim"
	"cookly/ratings"
	"cookly/recipes"
	"cookly/search"
	"cookly/streaks"

	"github.com/julienschmidt/httprouter"
)

func AddRecipeRoutes(router *httprouter.Router, h *recipes.Handler) {
	router.GET("/api/recipes", h.GetRecipes)
	router.GET("/api/recipes/:id", h.GetRecipe)
	router.GET("/api/categories", h.GetCategories)
	router.GET("/api/categories/:category/recipes", h.GetRecipesByCategory)
	router.GET("/api/cuisines", h.GetCuisines)
}

func AddSearchRoutes(router *httprouter.Router, h *search.Handler) {
	router.GET("/api/search", h.Search)
	router.GET("/api/search/live", h.LiveSearch)
	router.GET("/api/filters", h.GetFilters)
}

func AddPantryRoutes(router *httprouter.Router, h *pantry.Handler, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/pantry", middleware.Authenticate(h.GetPantry))
	router.POST("/api/pantry", rateLimiter.Limit(middleware.Authenticate(h.AddItem)))
	router.DELETE("/api/pantry/:key", rateLimiter.Limit(middleware.Authenticate(h.RemoveItem)))
	router.POST("/api/pantry/toggle", rateLimiter.Limit(middleware.Authenticate(h.Toggle)))
}

// Pricing is open to guests; a signed-in caller gets pantry exclusions.
func AddPricingRoutes(router *httprouter.Router, h *pricing.Handler) {
	router.GET("/api/recipes/:id/prices", middleware.OptionalAuth(h.GetPrices))
	router.GET("/api/recipes/:id/prices/:store/list.pdf", middleware.OptionalAuth(h.GetShoppingListPDF))
	router.GET("/api/recipes/:id/prices/:store/qr.png", middleware.OptionalAuth(h.GetDeliveryQR))
	router.GET("/api/recipes/:id/comparison.xlsx", middleware.OptionalAuth(h.GetComparisonWorkbook))
}

func AddRatingRoutes(router *httprouter.Router, h *ratings.Handler, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/recipes/:id/ratings", middleware.OptionalAuth(h.GetRatings))
	router.PUT("/api/recipes/:id/ratings", rateLimiter.Limit(middleware.Authenticate(h.RateRecipe)))
}

func AddStreakRoutes(router *httprouter.Router, h *streaks.Handler, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/cooks", rateLimiter.Limit(middleware.Authenticate(h.RecordCook)))
	router.GET("/api/streak", middleware.Authenticate(h.GetStreak))
}

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rateLimiter.Limit(h.Register))
	router.POST("/api/auth/login", rateLimiter.Limit(h.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(h.Logout))
	router.POST("/api/auth/token/refresh", rateLimiter.Limit(middleware.Authenticate(h.RefreshToken)))

	router.GET("/api/profile", middleware.Authenticate(h.GetProfile))
	router.PUT("/api/profile", rateLimiter.Limit(middleware.Authenticate(h.UpdateProfile)))
}
