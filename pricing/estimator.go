package pricing

import (
	"math"
	"sort"
	"strings"

	"cookly/models"
	"cookly/utils"
)

type productKey struct {
	store models.StoreID
	key   string
}

// Estimator prices recipes against a fixed set of stores and a static catalog.
// It holds no mutable state and is safe for concurrent use.
type Estimator struct {
	stores   []models.Store
	products map[productKey]models.StoreProduct
	defaults func(models.StoreID) float64
}

// NewEstimator indexes products by (store, ingredient key). The first row for a pair wins.
func NewEstimator(stores []models.Store, products []models.StoreProduct) *Estimator {
	idx := make(map[productKey]models.StoreProduct, len(products))
	for _, p := range products {
		k := productKey{store: p.StoreID, key: p.IngredientKey}
		if _, ok := idx[k]; ok {
			continue
		}
		idx[k] = p
	}
	return &Estimator{stores: stores, products: idx, defaults: DefaultPrice}
}

var defaultEstimator = NewEstimator(Stores, StoreProducts)

// Default returns the estimator over the built-in stores and catalog.
func Default() *Estimator { return defaultEstimator }

func (e *Estimator) Stores() []models.Store { return e.stores }

// Estimate returns one estimate per store, cheapest first. Ingredients whose
// normalized key is in the pantry are skipped. Ties on total resolve by store id.
// A recipe without ingredients yields nil.
func (e *Estimator) Estimate(recipe *models.Recipe, pantry []models.PantryItem) []models.StorePriceEstimate {
	if recipe == nil || len(recipe.Ingredients) == 0 || len(e.stores) == 0 {
		return nil
	}

	owned := make(map[string]struct{}, len(pantry))
	for _, p := range pantry {
		if k := utils.NormalizeIngredientKey(p.IngredientKey); k != "" {
			owned[k] = struct{}{}
		}
	}

	toBuy := make([]string, 0, len(recipe.Ingredients))
	for _, label := range recipe.Ingredients {
		if _, ok := owned[utils.NormalizeIngredientKey(label)]; ok {
			continue
		}
		toBuy = append(toBuy, label)
	}

	estimates := make([]models.StorePriceEstimate, 0, len(e.stores))
	for _, store := range e.stores {
		items := make([]models.PriceBreakdownItem, 0, len(toBuy))
		total := 0.0
		for _, label := range toBuy {
			item := e.priceItem(store.ID, label)
			total += item.UnitPrice
			items = append(items, item)
		}
		estimates = append(estimates, models.StorePriceEstimate{
			Store:      store,
			TotalPrice: roundCents(total),
			Items:      items,
		})
	}

	sort.SliceStable(estimates, func(i, j int) bool {
		if estimates[i].TotalPrice != estimates[j].TotalPrice {
			return estimates[i].TotalPrice < estimates[j].TotalPrice
		}
		return estimates[i].Store.ID < estimates[j].Store.ID
	})
	estimates[0].IsCheapest = true

	return estimates
}

func (e *Estimator) priceItem(store models.StoreID, label string) models.PriceBreakdownItem {
	p, ok := e.products[productKey{store, utils.NormalizeIngredientKey(label)}]
	if !ok {
		p, ok = e.products[productKey{store, strings.ToLower(strings.TrimSpace(label))}]
	}
	if ok {
		return models.PriceBreakdownItem{
			IngredientLabel: label,
			ProductName:     p.ProductName,
			UnitSize:        p.UnitSize,
			UnitPrice:       p.UnitPrice,
		}
	}
	return models.PriceBreakdownItem{
		IngredientLabel: label,
		ProductName:     label,
		UnitSize:        "1 unit",
		UnitPrice:       e.defaults(store),
		Fallback:        true,
	}
}

// EstimateFor returns the estimate for one store, if the recipe can be priced.
func (e *Estimator) EstimateFor(recipe *models.Recipe, pantry []models.PantryItem, store models.StoreID) (models.StorePriceEstimate, bool) {
	for _, est := range e.Estimate(recipe, pantry) {
		if est.Store.ID == store {
			return est, true
		}
	}
	return models.StorePriceEstimate{}, false
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
