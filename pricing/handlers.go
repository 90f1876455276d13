package pricing

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"cookly/models"
	"cookly/utils"

	"github.com/cespare/xxhash/v2"
	"github.com/julienschmidt/httprouter"
)

type RecipeSource interface {
	ByID(id string) (models.Recipe, bool)
}

type PantryReader interface {
	Get(ctx context.Context, userID string) ([]models.PantryItem, error)
}

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

// EstimateView is an estimate plus its delivery links.
type EstimateView struct {
	models.StorePriceEstimate
	Links DeliveryLinks `json:"links"`
}

type PriceResponse struct {
	RecipeID  string         `json:"recipeId"`
	Available bool           `json:"available"`
	Estimates []EstimateView `json:"estimates"`
}

type Handler struct {
	estimator *Estimator
	recipes   RecipeSource
	pantries  PantryReader
	cache     Cache
	ttl       time.Duration
}

// NewHandler wires the price endpoints. pantries and cache may be nil.
func NewHandler(estimator *Estimator, recipes RecipeSource, pantries PantryReader, cache Cache, ttl time.Duration) *Handler {
	return &Handler{estimator: estimator, recipes: recipes, pantries: pantries, cache: cache, ttl: ttl}
}

// GetPrices returns per-store estimates for a recipe. Signed-in users have
// their pantry items excluded.
func (h *Handler) GetPrices(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipe, pantry, ok := h.load(w, r, ps)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	key := cacheKey(recipe.ID, pantry)
	var resp PriceResponse
	if h.cache != nil {
		hit, err := h.cache.GetJSON(ctx, key, &resp)
		if err != nil {
			log.Printf("[GetPrices] cache read failed: %v", err)
		}
		if hit {
			utils.RespondWithJSON(w, http.StatusOK, resp)
			return
		}
	}

	resp = buildResponse(recipe, h.estimator.Estimate(&recipe, pantry))
	if h.cache != nil {
		if err := h.cache.SetJSON(ctx, key, resp, h.ttl); err != nil {
			log.Printf("[GetPrices] cache write failed: %v", err)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetShoppingListPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipe, pantry, ok := h.load(w, r, ps)
	if !ok {
		return
	}
	est, ok := h.estimator.EstimateFor(&recipe, pantry, models.StoreID(ps.ByName("store")))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "No estimate for that store")
		return
	}

	body, err := ShoppingListPDF(&recipe, est)
	if err != nil {
		log.Printf("[GetShoppingListPDF] %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}
	utils.RespondWithFile(w, "application/pdf", fmt.Sprintf("shopping-list-%s-%s.pdf", recipe.ID, est.Store.ID), body)
}

// GetDeliveryQR returns a QR code for ?provider=ubereats|doordash (default ubereats).
func (h *Handler) GetDeliveryQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	provider := Provider(strings.ToLower(r.URL.Query().Get("provider")))
	if provider == "" {
		provider = ProviderUberEats
	}

	recipe, pantry, ok := h.load(w, r, ps)
	if !ok {
		return
	}
	est, ok := h.estimator.EstimateFor(&recipe, pantry, models.StoreID(ps.ByName("store")))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "No estimate for that store")
		return
	}
	link, ok := DeliveryLinksFor(est).Link(provider)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown delivery provider")
		return
	}

	size := 256
	if s, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && s >= 64 && s <= 1024 {
		size = s
	}
	png, err := DeliveryQR(link, size)
	if err != nil {
		log.Printf("[GetDeliveryQR] %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	utils.RespondWithFile(w, "image/png", "", png)
}

func (h *Handler) GetComparisonWorkbook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipe, pantry, ok := h.load(w, r, ps)
	if !ok {
		return
	}
	estimates := h.estimator.Estimate(&recipe, pantry)
	if len(estimates) == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Pricing unavailable for this recipe")
		return
	}

	body, err := ComparisonWorkbook(&recipe, estimates)
	if err != nil {
		log.Printf("[GetComparisonWorkbook] %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate workbook")
		return
	}
	utils.RespondWithFile(w,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"price-comparison-"+recipe.ID+".xlsx", body)
}

// load resolves the recipe and, for signed-in users, their pantry. A pantry
// read failure is logged and pricing continues without exclusions.
func (h *Handler) load(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (models.Recipe, []models.PantryItem, bool) {
	recipe, ok := h.recipes.ByID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		return models.Recipe{}, nil, false
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" || h.pantries == nil {
		return recipe, nil, true
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	pantry, err := h.pantries.Get(ctx, userID)
	if err != nil {
		log.Printf("[pricing] pantry read for %s failed, pricing without it: %v", userID, err)
		return recipe, nil, true
	}
	return recipe, pantry, true
}

func buildResponse(recipe models.Recipe, estimates []models.StorePriceEstimate) PriceResponse {
	views := make([]EstimateView, 0, len(estimates))
	for _, est := range estimates {
		views = append(views, EstimateView{StorePriceEstimate: est, Links: DeliveryLinksFor(est)})
	}
	return PriceResponse{
		RecipeID:  recipe.ID,
		Available: len(views) > 0,
		Estimates: views,
	}
}

// cacheKey is stable under pantry reordering and duplicate keys.
func cacheKey(recipeID string, pantry []models.PantryItem) string {
	keys := make([]string, 0, len(pantry))
	seen := make(map[string]struct{}, len(pantry))
	for _, p := range pantry {
		k := utils.NormalizeIngredientKey(p.IngredientKey)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("%s:%016x", recipeID, xxhash.Sum64String(strings.Join(keys, "\n")))
}
