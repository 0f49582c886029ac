package models

// OfferSuggestion is an externally generated price-change proposal. A batch
// carries no ordering guarantee; suggestions for unknown products are
// silently skipped when applied.
type OfferSuggestion struct {
	ProductID      string  `json:"productId"`
	SuggestedPrice float64 `json:"suggestedPrice"`
	Reasoning      string  `json:"reasoning"`
}

type GenerateOffersRequest struct {
	Theme string `json:"theme" binding:"required,min=2,max=200"`
}

type ApplyOffersRequest struct {
	Suggestions []OfferSuggestion `json:"suggestions" binding:"required,min=1,dive"`
}
