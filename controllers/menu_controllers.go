package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tabletaste/tabletaste-app/catalog"
	"github.com/tabletaste/tabletaste-app/models"
	"github.com/tabletaste/tabletaste-app/utils"
)

type MenuController struct {
	Catalog *catalog.MenuCatalog
}

func NewMenuController(cat *catalog.MenuCatalog) *MenuController {
	return &MenuController{Catalog: cat}
}

// GetAllMenus returns the menu grouped by category, in menu order.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	grouped := make(map[string][]models.MenuItem)
	for _, category := range mc.Catalog.Categories() {
		grouped[category] = mc.Catalog.ByCategory(category)
	}

	utils.RespondJSON(c, http.StatusOK, "List of menus", gin.H{
		"categories": mc.Catalog.Categories(),
		"menus":      grouped,
	})
}

func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("menu_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu_id"))
		return
	}

	item, ok := mc.Catalog.Find(uint(id))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu detail", item)
}

// SearchMenus filters by free-text query (?q=) and dietary tag (?dietary=).
func (mc *MenuController) SearchMenus(c *gin.Context) {
	items := mc.Catalog.Search(c.Query("q"))

	if tag := c.Query("dietary"); tag != "" {
		filtered := items[:0]
		for _, item := range items {
			if item.HasDietary(tag) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	utils.RespondJSON(c, http.StatusOK, "Search results", items)
}
