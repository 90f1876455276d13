package pricing

import "cookly/models"

const (
	Provigo models.StoreID = "provigo"
	Maxi    models.StoreID = "maxi"
	IGA     models.StoreID = "iga"
)

// Stores are priced in this order.
var Stores = []models.Store{
	{ID: Provigo, Name: "Provigo", AccentColor: "#EF4444"},
	{ID: Maxi, Name: "Maxi", AccentColor: "#22C55E"},
	{ID: IGA, Name: "IGA", AccentColor: "#F97316"},
}

// DefaultPrice is what a store charges for an ingredient missing from its catalog.
func DefaultPrice(id models.StoreID) float64 {
	switch id {
	case Provigo:
		return 3.0
	case Maxi:
		return 2.5
	case IGA:
		return 2.75
	default:
		return 2.5
	}
}

// StoreProducts is the static price catalog, keyed by normalized ingredient key.
var StoreProducts = []models.StoreProduct{
	{StoreID: Provigo, IngredientKey: "chicken breast", ProductName: "Fresh Chicken Breast Fillets ~500 g", UnitPrice: 8.99, UnitSize: "500 g"},
	{StoreID: Maxi, IngredientKey: "chicken breast", ProductName: "Maxi Boneless Chicken Breasts ~500 g", UnitPrice: 7.99, UnitSize: "500 g"},
	{StoreID: IGA, IngredientKey: "chicken breast", ProductName: "IGA Fresh Chicken Breast ~500 g", UnitPrice: 8.49, UnitSize: "500 g"},

	{StoreID: Provigo, IngredientKey: "eggs", ProductName: "Large White Eggs (Dozen)", UnitPrice: 4.49, UnitSize: "12 eggs"},
	{StoreID: Maxi, IngredientKey: "eggs", ProductName: "No Name Large White Eggs (Dozen)", UnitPrice: 3.99, UnitSize: "12 eggs"},
	{StoreID: IGA, IngredientKey: "eggs", ProductName: "IGA Large White Eggs (Dozen)", UnitPrice: 4.29, UnitSize: "12 eggs"},

	{StoreID: Provigo, IngredientKey: "milk", ProductName: "2% Milk 2L", UnitPrice: 5.29, UnitSize: "2 L"},
	{StoreID: Maxi, IngredientKey: "milk", ProductName: "No Name 2% Milk 2L", UnitPrice: 4.79, UnitSize: "2 L"},
	{StoreID: IGA, IngredientKey: "milk", ProductName: "IGA 2% Milk 2L", UnitPrice: 5.09, UnitSize: "2 L"},

	{StoreID: Provigo, IngredientKey: "rice", ProductName: "Long Grain White Rice 900 g", UnitPrice: 4.99, UnitSize: "900 g"},
	{StoreID: Maxi, IngredientKey: "rice", ProductName: "No Name Long Grain Rice 900 g", UnitPrice: 3.99, UnitSize: "900 g"},
	{StoreID: IGA, IngredientKey: "rice", ProductName: "IGA Long Grain White Rice 900 g", UnitPrice: 4.59, UnitSize: "900 g"},

	{StoreID: Provigo, IngredientKey: "pasta", ProductName: "Spaghetti Pasta 500 g", UnitPrice: 2.49, UnitSize: "500 g"},
	{StoreID: Maxi, IngredientKey: "pasta", ProductName: "No Name Spaghetti 500 g", UnitPrice: 1.79, UnitSize: "500 g"},
	{StoreID: IGA, IngredientKey: "pasta", ProductName: "IGA Spaghetti 500 g", UnitPrice: 2.19, UnitSize: "500 g"},

	{StoreID: Provigo, IngredientKey: "canned tomatoes", ProductName: "Diced Tomatoes 796 mL", UnitPrice: 2.99, UnitSize: "796 mL"},
	{StoreID: Maxi, IngredientKey: "canned tomatoes", ProductName: "No Name Diced Tomatoes 796 mL", UnitPrice: 1.99, UnitSize: "796 mL"},
	{StoreID: IGA, IngredientKey: "canned tomatoes", ProductName: "IGA Diced Tomatoes 796 mL", UnitPrice: 2.49, UnitSize: "796 mL"},

	{StoreID: Provigo, IngredientKey: "mozzarella cheese", ProductName: "Kirkland Mozzarella Shredded Cheese 500 g", UnitPrice: 7.0, UnitSize: "500 g"},
	{StoreID: Maxi, IngredientKey: "mozzarella cheese", ProductName: "No Name Mozzarella Shredded Cheese 500 g", UnitPrice: 6.5, UnitSize: "500 g"},
	{StoreID: IGA, IngredientKey: "mozzarella cheese", ProductName: "IGA Mozzarella Cheese 500 g", UnitPrice: 6.75, UnitSize: "500 g"},

	{StoreID: Provigo, IngredientKey: "olive oil", ProductName: "Extra Virgin Olive Oil 1L", UnitPrice: 11.99, UnitSize: "1 L"},
	{StoreID: Maxi, IngredientKey: "olive oil", ProductName: "No Name Olive Oil 1L", UnitPrice: 9.99, UnitSize: "1 L"},
	{StoreID: IGA, IngredientKey: "olive oil", ProductName: "IGA Extra Virgin Olive Oil 1L", UnitPrice: 10.99, UnitSize: "1 L"},
}
