package config

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the reservation catalog database for the configured driver.
// Only called when CatalogDriver is a real database.
func InitDB(cfg Config) (*gorm.DB, error) {
	switch cfg.CatalogDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	case "mysql":
		if cfg.MySQLDSN == "" {
			return nil, fmt.Errorf("MYSQL_DSN is required for the mysql catalog driver")
		}
		return gorm.Open(mysql.Open(cfg.MySQLDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown catalog driver %q", cfg.CatalogDriver)
	}
}

// InitRedis builds the Redis client for the redis storage driver.
func InitRedis(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}
