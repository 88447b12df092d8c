package models

// Dietary tags carried by menu items.
const (
	DietaryVegetarian = "vegetarian"
	DietaryVegan      = "vegan"
	DietaryGlutenFree = "gluten-free"
)

type MenuItem struct {
	ID                    uint     `json:"id"`
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	Price                 float64  `json:"price"`
	Image                 string   `json:"image"`
	Category              string   `json:"category"`
	Ingredients           []string `json:"ingredients,omitempty"`
	Allergens             []string `json:"allergens,omitempty"`
	NutritionalHighlights []string `json:"nutritional_highlights,omitempty"`
	Dietary               []string `json:"dietary,omitempty"`
	Available             bool     `json:"available"`
}

// HasDietary reports whether the item carries the given dietary tag.
func (m MenuItem) HasDietary(tag string) bool {
	for _, d := range m.Dietary {
		if d == tag {
			return true
		}
	}
	return false
}
