package dto

type CartItemInput struct {
	ProductID      string `json:"product_id"`
	VariantID      string `json:"variant_id,omitempty"`
	Title          string `json:"title"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type ReplaceCartRequest struct {
	Items []CartItemInput `json:"items"`
}

type CreateReviewRequest struct {
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Title     string `json:"title,omitempty"`
	Body      string `json:"body"`
}

type CreateTestimonialRequest struct {
	AuthorName string `json:"author_name,omitempty"`
	Quote      string `json:"quote"`
}
