package request

// CheckoutRequest is the body the product page posts when "Comprar" is clicked.
type CheckoutRequest struct {
	PriceID string `json:"priceId" binding:"required" example:"price_1NsrB0DNe7vDZ6Q2"`
}
