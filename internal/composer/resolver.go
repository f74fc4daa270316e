package composer

import "github.com/agencialume/app-landing/internal/models"

// ResolvedPrice is the price actually displayed for a solution entry after
// applying product-over-literal precedence.
type ResolvedPrice struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// ResolvePrice matches a solution entry's product reference against the
// fetched product list. The result, when present, always wins over literal
// section pricing: the relational product record is the source of truth once
// an explicit link exists, so stale literal prices in content records never
// override live pricing. Returns nil when the entry declares no product or
// the identity is not found; the caller then falls back to literal fields.
func ResolvePrice(productID *string, products []models.Product) *ResolvedPrice {
	if productID == nil || *productID == "" {
		return nil
	}
	for _, p := range products {
		if p.ID == *productID {
			return &ResolvedPrice{
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.DefaultPrice,
			}
		}
	}
	return nil
}
