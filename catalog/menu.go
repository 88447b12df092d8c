package catalog

import (
	"strings"

	"github.com/tabletaste/tabletaste-app/models"
)

// MenuCatalog is the static, read-only menu supplied at initialization.
// Managers never mutate it; lookups return copies.
type MenuCatalog struct {
	items []models.MenuItem
	byID  map[uint]models.MenuItem
	order []string
}

func NewMenuCatalog(items []models.MenuItem) *MenuCatalog {
	c := &MenuCatalog{
		items: make([]models.MenuItem, len(items)),
		byID:  make(map[uint]models.MenuItem, len(items)),
	}
	copy(c.items, items)
	seen := make(map[string]bool)
	for _, item := range c.items {
		c.byID[item.ID] = item
		if !seen[item.Category] {
			seen[item.Category] = true
			c.order = append(c.order, item.Category)
		}
	}
	return c
}

func (c *MenuCatalog) Items() []models.MenuItem {
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Categories returns the category names in menu order.
func (c *MenuCatalog) Categories() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *MenuCatalog) ByCategory(category string) []models.MenuItem {
	var out []models.MenuItem
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func (c *MenuCatalog) Find(id uint) (models.MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Search matches query case-insensitively against name, description and
// ingredients.
func (c *MenuCatalog) Search(query string) []models.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Items()
	}
	var out []models.MenuItem
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Description), q) {
			out = append(out, item)
			continue
		}
		for _, ing := range item.Ingredients {
			if strings.Contains(strings.ToLower(ing), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// FilterDietary returns the items carrying the given dietary tag.
func (c *MenuCatalog) FilterDietary(tag string) []models.MenuItem {
	var out []models.MenuItem
	for _, item := range c.items {
		if item.HasDietary(tag) {
			out = append(out, item)
		}
	}
	return out
}
