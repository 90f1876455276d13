package recipes

import (
	"net/http"

	"cookly/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// GetRecipes lists recipes, optionally narrowed by ?q=&category=&maxTime=.
func (h *Handler) GetRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	recipes := h.catalog.Browse(BrowseQuery{
		Name:     query.Get("q"),
		Category: query.Get("category"),
		MaxTime:  utils.ParseInt(query.Get("maxTime")),
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"recipes": recipes,
		"count":   len(recipes),
	})
}

func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipe, ok := h.catalog.ByID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.catalog.Categories())
}

func (h *Handler) GetCuisines(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.catalog.Cuisines())
}

func (h *Handler) GetRecipesByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipes := h.catalog.ByCategory(ps.ByName("category"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"category": ps.ByName("category"),
		"recipes":  recipes,
		"count":    len(recipes),
	})
}
