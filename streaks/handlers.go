package streaks

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

type cookRequest struct {
	RecipeID string `json:"recipeId"`
	Rating   int    `json:"rating"`
}

func (h *Handler) RecordCook(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req cookRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, ok := h.recipes.ByID(req.RecipeID); !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	streak, err := h.svc.RecordCook(ctx, utils.GetUserIDFromRequest(r), req.RecipeID, req.Rating)
	switch {
	case errors.Is(err, ErrInvalidRating), errors.Is(err, ErrMissingRecipe):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, ErrMissingUser):
		utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		return
	case err != nil:
		log.Printf("[RecordCook] %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record cook")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, streak)
}

// GetStreak returns a zero streak for users who have never cooked.
func (h *Handler) GetStreak(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	streak, err := h.svc.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithJSON(w, http.StatusOK, models.UserStreak{UserID: userID})
		return
	}
	if err != nil {
		log.Printf("[GetStreak] %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load streak")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, streak)
}
