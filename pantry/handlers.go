package pantry

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"cookly/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

type labelRequest struct {
	Label string `json:"label"`
}

func (h *Handler) GetPantry(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.store.Get(ctx, utils.GetUserIDFromRequest(r))
	if err != nil {
		log.Printf("[GetPantry] %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load pantry")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"pantry": items})
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req labelRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, err := NewItem(req.Label, time.Now())
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := h.store.Add(ctx, utils.GetUserIDFromRequest(r), item); err != nil {
		log.Printf("[AddPantryItem] %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update pantry")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, item)
}

// RemoveItem accepts either a stored key or a raw label in the path.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	key := utils.NormalizeIngredientKey(ps.ByName("key"))
	if key == "" {
		utils.RespondWithError(w, http.StatusBadRequest, ErrEmptyLabel.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := h.store.Remove(ctx, utils.GetUserIDFromRequest(r), key); err != nil {
		log.Printf("[RemovePantryItem] %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update pantry")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"removed": key})
}

// Toggle flips one ingredient and returns the resulting pantry. On a failed
// write the returned pantry is the pre-toggle state.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req labelRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	view := NewView(h.store, utils.GetUserIDFromRequest(r))
	if err := view.Load(ctx); err != nil {
		log.Printf("[TogglePantryItem] load: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load pantry")
		return
	}

	inPantry, err := view.Toggle(ctx, req.Label)
	if errors.Is(err, ErrEmptyLabel) {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		utils.RespondWithJSON(w, http.StatusBadGateway, utils.M{
			"error":    "Failed to update pantry",
			"inPantry": inPantry,
			"pantry":   view.Items(),
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"inPantry": inPantry,
		"pantry":   view.Items(),
	})
}
