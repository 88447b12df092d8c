package models

// CheckoutRequest carries the delivery details collected at checkout.
// Payment is simulated, so the method is free text rather than gateway data.
type CheckoutRequest struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	City                string `json:"city"`
	ZipCode             string `json:"zip_code"`
	PaymentMethod       string `json:"payment_method"`
	SpecialInstructions string `json:"special_instructions"`
}
