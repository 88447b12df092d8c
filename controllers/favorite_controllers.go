package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tabletaste/tabletaste-app/catalog"
	"github.com/tabletaste/tabletaste-app/favorites"
	"github.com/tabletaste/tabletaste-app/utils"
)

type FavoriteController struct {
	Manager *favorites.Manager
	Catalog *catalog.MenuCatalog
}

func NewFavoriteController(mgr *favorites.Manager, cat *catalog.MenuCatalog) *FavoriteController {
	return &FavoriteController{Manager: mgr, Catalog: cat}
}

func (fc *FavoriteController) GetFavorites(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of favorites", fc.Manager.List())
}

type toggleFavoriteRequest struct {
	MenuID uint `json:"menu_id" binding:"required"`
}

func (fc *FavoriteController) ToggleFavorite(c *gin.Context) {
	var req toggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	item, ok := fc.Catalog.Find(req.MenuID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu not found"))
		return
	}

	isFavorite := fc.Manager.Toggle(item)
	utils.RespondJSON(c, http.StatusOK, "Favorite toggled", gin.H{
		"is_favorite": isFavorite,
		"favorites":   fc.Manager.List(),
	})
}
