package search

import (
	"net/http"
	"strings"

	"cookly/models"
	"cookly/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	recipes []models.Recipe
	opts    []Option
}

// NewHandler serves searches over recipes. opts configure each live session's engine.
func NewHandler(recipes []models.Recipe, opts ...Option) *Handler {
	return &Handler{recipes: recipes, opts: opts}
}

// Search runs one undebounced search: GET /api/search?q=...&filters=Diet,Gourmet
func (h *Handler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query().Get("q")
	filters, unknown := ParseFilters(r.URL.Query().Get("filters"))
	if len(unknown) > 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown filter: "+strings.Join(unknown, ", "))
		return
	}

	snap := Snapshot{Query: query, Filters: filters, Results: []models.Recipe{}, State: models.SearchIdle}
	if !IsIdle(query, filters) {
		snap.Results = Filter(h.recipes, query, filters)
		snap.State = StateFor(snap.Results)
	}
	utils.RespondWithJSON(w, http.StatusOK, snap)
}

// GetFilters lists the available filter chips.
func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, models.AllFilters)
}
