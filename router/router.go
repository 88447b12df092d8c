package router

import (
	"github.com/gin-gonic/gin"
	"github.com/tabletaste/tabletaste-app/controllers"
	"github.com/tabletaste/tabletaste-app/middlewares"
)

// Controllers bundles everything the router wires up.
type Controllers struct {
	Menu        *controllers.MenuController
	Cart        *controllers.CartController
	Reservation *controllers.ReservationController
	Review      *controllers.ReviewController
	Favorite    *controllers.FavoriteController
	Feed        *controllers.FeedController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	submitLimiter := middlewares.NewSubmitRateLimiter()

	api := r.Group("/api")
	{
		menus := api.Group("/menus")
		{
			menus.GET("", ctrl.Menu.GetAllMenus)
			menus.GET("/search", ctrl.Menu.SearchMenus)
			menus.GET("/:menu_id", ctrl.Menu.GetMenuByID)
		}

		cart := api.Group("/cart")
		{
			cart.GET("", ctrl.Cart.GetCart)
			cart.DELETE("", ctrl.Cart.ClearCart)
			cart.POST("/items", ctrl.Cart.AddItem)
			cart.PATCH("/items/:item_id", ctrl.Cart.UpdateQuantity)
			cart.DELETE("/items/:item_id", ctrl.Cart.RemoveItem)
			cart.POST("/visibility", ctrl.Cart.SetVisibility)
			cart.POST("/checkout", submitLimiter, ctrl.Cart.Checkout)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("/time-slots", ctrl.Reservation.GetTimeSlots)
			reservations.GET("/state", ctrl.Reservation.GetState)
			reservations.POST("/lookup", ctrl.Reservation.Lookup)
			reservations.POST("", submitLimiter, ctrl.Reservation.Submit)
			reservations.POST("/modify", ctrl.Reservation.BeginModify)
			reservations.POST("/modify/cancel", ctrl.Reservation.CancelModify)
			reservations.POST("/cancel", ctrl.Reservation.Cancel)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", ctrl.Review.GetAllReviews)
			reviews.POST("", submitLimiter, ctrl.Review.CreateReview)
		}

		favorites := api.Group("/favorites")
		{
			favorites.GET("", ctrl.Favorite.GetFavorites)
			favorites.POST("/toggle", ctrl.Favorite.ToggleFavorite)
		}
	}

	r.GET("/ws/feed", ctrl.Feed.Feed)

	return r
}
