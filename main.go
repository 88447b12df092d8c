package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/tabletaste/tabletaste-app/cart"
	"github.com/tabletaste/tabletaste-app/catalog"
	"github.com/tabletaste/tabletaste-app/config"
	"github.com/tabletaste/tabletaste-app/controllers"
	"github.com/tabletaste/tabletaste-app/favorites"
	"github.com/tabletaste/tabletaste-app/livefeed"
	"github.com/tabletaste/tabletaste-app/middlewares"
	"github.com/tabletaste/tabletaste-app/notify"
	"github.com/tabletaste/tabletaste-app/reservations"
	"github.com/tabletaste/tabletaste-app/reviews"
	"github.com/tabletaste/tabletaste-app/router"
	"github.com/tabletaste/tabletaste-app/services"
	"github.com/tabletaste/tabletaste-app/store"
	"github.com/tabletaste/tabletaste-app/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Key-value store: the durable medium the cart and favorites live in.
	var kv store.KeyValueStore
	switch cfg.StorageDriver {
	case "redis":
		client := config.InitRedis(cfg)
		kv = store.NewRedisStore(client, cfg.PollInterval, cfg.CartKey, cfg.FavoritesKey)
		utils.InfoLogger.Printf("using redis storage at %s", cfg.RedisAddr)
	default:
		kv = store.NewMemoryStore()
		utils.InfoLogger.Println("using in-memory storage")
	}
	defer kv.Close()

	// Reservation catalog: seed list or a real database.
	var resCatalog catalog.ReservationCatalog
	if cfg.CatalogDriver == "seed" {
		resCatalog = catalog.NewMemoryReservations(catalog.SeedReservations())
		utils.InfoLogger.Println("using seed reservation catalog")
	} else {
		db, err := config.InitDB(cfg)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
		}
		resCatalog, err = catalog.NewGormReservations(db)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to prepare reservation catalog: %v", err)
		}
		utils.InfoLogger.Printf("using %s reservation catalog", cfg.CatalogDriver)
	}

	menuCatalog := catalog.NewMenuCatalog(catalog.DefaultMenu())

	// Notifications go to the log and out over the live feed.
	notifier := notify.Multi{
		notify.NewLogNotifier(utils.InfoLogger),
		livefeed.HubNotifier{},
	}

	pricing := cart.Pricing{
		TaxRate:               cfg.TaxRate,
		DeliveryFee:           cfg.DeliveryFee,
		FreeDeliveryThreshold: cfg.FreeDeliveryThreshold,
	}
	cartMgr := cart.NewManager(kv, cfg.CartKey, notifier, pricing)
	favMgr := favorites.NewManager(kv, cfg.FavoritesKey, notifier)
	resMgr := reservations.NewManager(resCatalog, notifier)
	revMgr := reviews.NewManager(reviews.SeedReviews(), notifier)

	// Bridge store changes onto the live feed for other tabs.
	monitor := services.NewStoreMonitor(kv, cartMgr, cfg.CartKey, favMgr, cfg.FavoritesKey)
	monitor.Start()
	defer monitor.Stop()

	r := router.SetupRouter(router.Controllers{
		Menu:        controllers.NewMenuController(menuCatalog),
		Cart:        controllers.NewCartController(cartMgr, menuCatalog, livefeed.HubNotifier{}, cfg.CheckoutDelay),
		Reservation: controllers.NewReservationController(resMgr),
		Review:      controllers.NewReviewController(revMgr),
		Favorite:    controllers.NewFavoriteController(favMgr, menuCatalog),
		Feed:        controllers.NewFeedController(),
	})

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
