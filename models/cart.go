package models

// CartLine is one row in the cart. The display fields are denormalized from
// the menu item at add time so the stored cart renders without a catalog
// round-trip. JSON field names match the persisted storage layout.
type CartLine struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}

// CartSummary is the derived view of the cart exposed to clients.
type CartSummary struct {
	Lines       []CartLine `json:"lines"`
	ItemCount   int        `json:"item_count"`
	Subtotal    float64    `json:"subtotal"`
	Tax         float64    `json:"tax"`
	DeliveryFee float64    `json:"delivery_fee"`
	Total       float64    `json:"total"`
	IsOpen      bool       `json:"is_open"`
}
