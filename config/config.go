package config

import (
	"os"
	"strconv"
	"time"
)

// Config is assembled from environment variables (a .env file is loaded by
// main before this runs). Every field has a working default so the service
// boots with no configuration at all: in-memory storage, seed reservation
// catalog, port 8080.
type Config struct {
	Port    string
	GinMode string

	// StorageDriver selects the key-value store: "memory" or "redis".
	StorageDriver string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// CatalogDriver selects the reservation catalog: "seed", "sqlite" or
	// "mysql".
	CatalogDriver string
	SQLitePath    string
	MySQLDSN      string

	CartKey      string
	FavoritesKey string

	TaxRate               float64
	DeliveryFee           float64
	FreeDeliveryThreshold float64

	// PollInterval bounds staleness of the cross-instance refresh.
	PollInterval time.Duration

	// CheckoutDelay is the simulated payment round-trip.
	CheckoutDelay time.Duration
}

func Load() Config {
	return Config{
		Port:    envOr("PORT", "8080"),
		GinMode: envOr("GIN_MODE", ""),

		StorageDriver: envOr("STORAGE_DRIVER", "memory"),
		RedisAddr:     envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),

		CatalogDriver: envOr("CATALOG_DRIVER", "seed"),
		SQLitePath:    envOr("SQLITE_PATH", "tabletaste.db"),
		MySQLDSN:      os.Getenv("MYSQL_DSN"),

		CartKey:      envOr("CART_STORAGE_KEY", "cart"),
		FavoritesKey: envOr("FAVORITES_STORAGE_KEY", "favorites"),

		TaxRate:               envFloat("TAX_RATE", 0.08875),
		DeliveryFee:           envFloat("DELIVERY_FEE", 5.99),
		FreeDeliveryThreshold: envFloat("FREE_DELIVERY_THRESHOLD", 50),

		PollInterval:  envDuration("STORE_POLL_INTERVAL", time.Second),
		CheckoutDelay: envDuration("CHECKOUT_DELAY", 2*time.Second),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
