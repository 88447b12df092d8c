package catalog

import "github.com/tabletaste/tabletaste-app/models"

// DefaultMenu is the TableTaste menu.
func DefaultMenu() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:                    1,
			Name:                  "Truffle Arancini",
			Description:           "Crispy risotto balls with black truffle, parmesan, and herb aioli",
			Ingredients:           []string{"Arborio rice", "Black truffle", "Parmesan cheese", "Fresh herbs", "Garlic", "Onion", "Vegetable stock", "White wine", "Olive oil", "Breadcrumbs"},
			Allergens:             []string{"Gluten", "Dairy", "Eggs"},
			NutritionalHighlights: []string{"Rich in protein", "Contains antioxidants", "Source of calcium"},
			Price:                 18,
			Image:                 "https://images.unsplash.com/photo-1551782450-a2132b4ba21d?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Category:              "appetizers",
			Dietary:               []string{models.DietaryVegetarian},
			Available:             true,
		},
		{
			ID:                    2,
			Name:                  "Seared Scallops",
			Description:           "Pan-seared diver scallops with cauliflower purée and pancetta",
			Ingredients:           []string{"Diver scallops", "Cauliflower", "Pancetta", "Heavy cream", "Butter", "Thyme", "Garlic", "White wine", "Lemon", "Sea salt"},
			Allergens:             []string{"Shellfish", "Dairy", "Pork"},
			NutritionalHighlights: []string{"High in protein", "Low in carbs", "Rich in omega-3", "Source of vitamin B12"},
			Price:                 24,
			Image:                 "https://images.unsplash.com/photo-1559847844-5315695dadae?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Category:              "appetizers",
			Dietary:               []string{models.DietaryGlutenFree},
			Available:             true,
		},
		{
			ID:                    3,
			Name:                  "Burrata Caprese",
			Description:           "Fresh burrata with heirloom tomatoes, basil oil, and aged balsamic",
			Ingredients:           []string{"Burrata cheese", "Heirloom tomatoes", "Fresh basil", "Extra virgin olive oil", "Aged balsamic vinegar", "Sea salt", "Black pepper", "Microgreens"},
			Allergens:             []string{"Dairy"},
			NutritionalHighlights: []string{"Rich in calcium", "Source of lycopene", "Contains healthy fats", "High in vitamin C"},
			Price:                 16,
			Image:                 "https://images.unsplash.com/photo-1608897013039-887f21d8c804?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Category:              "appetizers",
			Dietary:               []string{models.DietaryVegetarian, models.DietaryGlutenFree},
			Available:             true,
		},
		{
			ID:                    4,
			Name:                  "Wagyu Ribeye",
			Description:           "12oz Australian wagyu with roasted bone marrow and red wine jus",
			Ingredients:           []string{"Australian wagyu ribeye", "Bone marrow", "Red wine", "Beef stock", "Shallots", "Garlic", "Fresh thyme", "Butter", "Sea salt", "Black pepper", "Roasted vegetables"},
			Allergens:             []string{"Dairy"},
			NutritionalHighlights: []string{"Exceptional protein source", "Rich in iron", "High in B vitamins", "Contains zinc"},
			Price:                 85,
			Image:                 "https://images.unsplash.com/photo-1546833999-b9f581a1996d?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Category:              "mains",
			Dietary:               []string{models.DietaryGlutenFree},
			Available:             true,
		},
		{
			ID:                    5,
			Name:                  "Lobster Thermidor",
			Description:           "Whole Maine lobster with cognac cream sauce and gruyère gratinée",
			Ingredients:           []string{"Maine lobster", "Cognac", "Heavy cream", "Gruyère cheese", "Egg yolks", "Mustard", "Shallots", "White wine", "Butter", "Fresh tarragon", "Paprika"},
			Allergens:             []string{"Shellfish", "Dairy", "Eggs"},
			NutritionalHighlights: []string{"High in protein", "Rich in omega-3", "Source of vitamin B12", "Contains selenium"},
			Price:                 68,
			Image:                 "https://images.unsplash.com/photo-1559847844-d72ee0d83afe?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Category:              "mains",
			Dietary:               []string{models.DietaryGlutenFree},
			Available:             true,
		},
		{
			ID:                    6,
			Name:                  "Duck Confit",
			Description:           "Slow-cooked duck leg with cherry gastrique and wild rice pilaf",
			Ingredients:           []string{"Duck leg", "Duck fat", "Wild rice", "Dried cherries", "Red wine vinegar", "Honey", "Shallots", "Fresh herbs", "Garlic", "Bay leaves", "Vegetable stock"},
			Allergens:             []string{},
			NutritionalHighlights: []string{"High in protein", "Rich in iron", "Source of healthy fats", "Contains antioxidants"},
			Price:                 42,
			Image:                 "https://images.unsplash.com/photo-1544025162-d76694265947?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Category:              "mains",
			Dietary:               []string{models.DietaryGlutenFree},
			Available:             true,
		},
		{
			ID:                    7,
			Name:                  "Vegetarian Tasting",
			Description:           "Chef's selection of seasonal vegetables with quinoa and tahini dressing",
			Ingredients:           []string{"Seasonal vegetables", "Quinoa", "Tahini", "Lemon juice", "Olive oil", "Garlic", "Fresh herbs", "Pomegranate seeds", "Roasted nuts", "Microgreens"},
			Allergens:             []string{"Sesame", "Tree nuts"},
			NutritionalHighlights: []string{"Complete protein", "High in fiber", "Rich in vitamins", "Plant-based antioxidants"},
			Price:                 38,
			Image:                 "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Category:              "mains",
			Dietary:               []string{models.DietaryVegetarian, models.DietaryVegan, models.DietaryGlutenFree},
			Available:             true,
		},
		{
			ID:                    8,
			Name:                  "Chocolate Soufflé",
			Description:           "Dark chocolate soufflé with vanilla bean ice cream and gold leaf",
			Ingredients:           []string{"Dark chocolate", "Eggs", "Sugar", "Butter", "Heavy cream", "Vanilla beans", "Milk", "Cornstarch", "Gold leaf", "Powdered sugar"},
			Allergens:             []string{"Dairy", "Eggs", "Gluten"},
			NutritionalHighlights: []string{"Rich in antioxidants", "Source of calcium", "Contains magnesium"},
			Price:                 16,
			Image:                 "https://images.unsplash.com/photo-1551024601-bec78aea704b?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Category:              "desserts",
			Dietary:               []string{models.DietaryVegetarian},
			Available:             true,
		},
		{
			ID:                    9,
			Name:                  "Lemon Tart",
			Description:           "Meyer lemon curd tart with candied lemon and lavender honey",
			Ingredients:           []string{"Meyer lemons", "Pastry flour", "Butter", "Eggs", "Sugar", "Heavy cream", "Lavender honey", "Vanilla extract", "Candied lemon zest"},
			Allergens:             []string{"Gluten", "Dairy", "Eggs"},
			NutritionalHighlights: []string{"Rich in vitamin C", "Contains antioxidants", "Source of citrus flavonoids"},
			Price:                 14,
			Image:                 "https://images.unsplash.com/photo-1464349095431-e9a21285b5f3?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Category:              "desserts",
			Dietary:               []string{models.DietaryVegetarian},
			Available:             true,
		},
	}
}
