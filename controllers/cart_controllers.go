package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tabletaste/tabletaste-app/cart"
	"github.com/tabletaste/tabletaste-app/catalog"
	"github.com/tabletaste/tabletaste-app/livefeed"
	"github.com/tabletaste/tabletaste-app/models"
	"github.com/tabletaste/tabletaste-app/notify"
	"github.com/tabletaste/tabletaste-app/utils"
	"github.com/tabletaste/tabletaste-app/validation"
)

type CartController struct {
	Cart          *cart.Manager
	Catalog       *catalog.MenuCatalog
	Navigator     notify.Navigator
	CheckoutDelay time.Duration
}

func NewCartController(mgr *cart.Manager, cat *catalog.MenuCatalog, nav notify.Navigator, checkoutDelay time.Duration) *CartController {
	if nav == nil {
		nav = notify.Discard{}
	}
	return &CartController{
		Cart:          mgr,
		Catalog:       cat,
		Navigator:     nav,
		CheckoutDelay: checkoutDelay,
	}
}

func (cc *CartController) GetCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart", cc.Cart.Summary())
}

type addItemRequest struct {
	MenuID   uint `json:"menu_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

func (cc *CartController) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	item, ok := cc.Catalog.Find(req.MenuID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu not found"))
		return
	}
	if !item.Available {
		utils.RespondError(c, http.StatusConflict, errors.New("menu item is not available"))
		return
	}

	if req.Quantity < 1 {
		req.Quantity = 1
	}
	cc.Cart.AddItem(item, req.Quantity)

	utils.RespondJSON(c, http.StatusOK, "Item added", cc.Cart.Summary())
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (cc *CartController) UpdateQuantity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item_id"))
		return
	}

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	cc.Cart.SetQuantity(uint(id), req.Quantity)
	utils.RespondJSON(c, http.StatusOK, "Quantity updated", cc.Cart.Summary())
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item_id"))
		return
	}

	cc.Cart.RemoveItem(uint(id))
	utils.RespondJSON(c, http.StatusOK, "Item removed", cc.Cart.Summary())
}

func (cc *CartController) ClearCart(c *gin.Context) {
	cc.Cart.Clear()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", cc.Cart.Summary())
}

type visibilityRequest struct {
	Open *bool `json:"open"`
}

// SetVisibility toggles the sidebar flag, or sets it when `open` is given.
// The flag is transient and never persisted.
func (cc *CartController) SetVisibility(c *gin.Context) {
	var req visibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	var open bool
	if req.Open != nil {
		cc.Cart.SetVisibility(*req.Open)
		open = *req.Open
	} else {
		open = cc.Cart.ToggleVisibility()
	}

	utils.RespondJSON(c, http.StatusOK, "Cart visibility", gin.H{"is_open": open})
}

func (cc *CartController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := cc.Cart.Checkout(req, cc.CheckoutDelay, cc.Navigator); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			utils.RespondJSON(c, http.StatusBadRequest, verr.Error(), gin.H{"fields": verr.Fields})
			return
		}
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	livefeed.BroadcastCartUpdate(cc.Cart.Summary())
	utils.RespondJSON(c, http.StatusAccepted, "Order is being processed", gin.H{
		"processing_delay_ms": cc.CheckoutDelay.Milliseconds(),
	})
}
