package pricing

import (
	"net/url"
	"strings"

	"cookly/models"
)

const (
	uberEatsBase = "https://www.ubereats.com/ca?"
	doorDashBase = "https://www.doordash.com/en-CA?"

	linkIngredientLimit = 5
)

type Provider string

const (
	ProviderUberEats Provider = "ubereats"
	ProviderDoorDash Provider = "doordash"
)

// DeliveryLinks are prefilled search links; no order is placed.
type DeliveryLinks struct {
	UberEats string `json:"uberEats"`
	DoorDash string `json:"doorDash"`
}

func DeliveryLinksFor(est models.StorePriceEstimate) DeliveryLinks {
	q := deliveryQuery(est)
	return DeliveryLinks{
		UberEats: uberEatsBase + q,
		DoorDash: doorDashBase + q,
	}
}

// Link returns the provider's URL, or false for an unknown provider.
func (l DeliveryLinks) Link(p Provider) (string, bool) {
	switch p {
	case ProviderUberEats:
		return l.UberEats, true
	case ProviderDoorDash:
		return l.DoorDash, true
	}
	return "", false
}

// store first, then the first few ingredient labels.
func deliveryQuery(est models.StorePriceEstimate) string {
	labels := make([]string, 0, linkIngredientLimit)
	for _, item := range est.Items {
		if len(labels) == linkIngredientLimit {
			break
		}
		labels = append(labels, item.IngredientLabel)
	}
	return "store=" + url.QueryEscape(est.Store.Name) +
		"&ingredients=" + url.QueryEscape(strings.Join(labels, ", "))
}
