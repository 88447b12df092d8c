package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tabletaste/tabletaste-app/models"
)

func TestDefaultMenuShape(t *testing.T) {
	c := NewMenuCatalog(DefaultMenu())

	assert.Len(t, c.Items(), 9)
	assert.Equal(t, []string{"appetizers", "mains", "desserts"}, c.Categories())
	assert.Len(t, c.ByCategory("appetizers"), 3)
	assert.Len(t, c.ByCategory("mains"), 4)
	assert.Len(t, c.ByCategory("desserts"), 2)
}

func TestFindMenuItem(t *testing.T) {
	c := NewMenuCatalog(DefaultMenu())

	item, ok := c.Find(4)
	assert.True(t, ok)
	assert.Equal(t, "Wagyu Ribeye", item.Name)
	assert.Equal(t, 85.0, item.Price)

	_, ok = c.Find(999)
	assert.False(t, ok)
}

func TestSearchMatchesNameDescriptionIngredients(t *testing.T) {
	c := NewMenuCatalog(DefaultMenu())

	byName := c.Search("wagyu")
	assert.Len(t, byName, 1)
	assert.Equal(t, uint(4), byName[0].ID)

	byIngredient := c.Search("cognac")
	assert.Len(t, byIngredient, 1)
	assert.Equal(t, "Lobster Thermidor", byIngredient[0].Name)

	assert.Len(t, c.Search(""), 9, "empty query returns everything")
	assert.Empty(t, c.Search("pizza"))
}

func TestFilterDietary(t *testing.T) {
	c := NewMenuCatalog(DefaultMenu())

	vegan := c.FilterDietary(models.DietaryVegan)
	assert.Len(t, vegan, 1)
	assert.Equal(t, "Vegetarian Tasting", vegan[0].Name)

	glutenFree := c.FilterDietary(models.DietaryGlutenFree)
	assert.Len(t, glutenFree, 6)
}

func TestCatalogIsReadOnly(t *testing.T) {
	c := NewMenuCatalog(DefaultMenu())

	items := c.Items()
	items[0].Name = "mutated"

	fresh, _ := c.Find(items[0].ID)
	assert.Equal(t, "Truffle Arancini", fresh.Name)
}
