package ratings

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"cookly/models"
	"cookly/utils"

	"github.com/julienschmidt/httprouter"
)

type RecipeSource interface {
	ByID(id string) (models.Recipe, bool)
}

type Handler struct {
	svc     *Service
	recipes RecipeSource
}

func NewHandler(svc *Service, recipes RecipeSource) *Handler {
	return &Handler{svc: svc, recipes: recipes}
}

// GetRatings returns the recipe's summary, including the caller's own rating when signed in.
func (h *Handler) GetRatings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipeID := ps.ByName("id")
	if _, ok := h.recipes.ByID(recipeID); !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	summary, err := h.svc.Summary(ctx, recipeID, utils.GetUserIDFromRequest(r))
	if err != nil {
		log.Printf("[GetRatings] recipe=%s: %v", recipeID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load ratings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

func (h *Handler) RateRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipeID := ps.ByName("id")
	if _, ok := h.recipes.ByID(recipeID); !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		return
	}

	var req struct {
		Rating int `json:"rating"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	_, err := h.svc.SetRating(ctx, userID, recipeID, req.Rating)
	switch {
	case errors.Is(err, ErrInvalidRating):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, ErrMissingUser):
		utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		return
	case err != nil:
		log.Printf("[RateRecipe] recipe=%s user=%s: %v", recipeID, userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save rating")
		return
	}

	summary, err := h.svc.Summary(ctx, recipeID, userID)
	if err != nil {
		log.Printf("[RateRecipe] summary: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load ratings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}
