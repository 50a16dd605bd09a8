package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging
	"time"    // Token lifetime arithmetic

	"inventory_api/internal/api"        // Custom package for API handlers
	"inventory_api/internal/auth"       // Authentication gate
	"inventory_api/internal/config"     // Custom package for configuration
	"inventory_api/internal/middleware" // Custom package for middleware
	"inventory_api/internal/repository" // Persistence layer

	"github.com/gin-gonic/gin"                                // Gin web framework
	"github.com/prometheus/client_golang/prometheus/promhttp" // Prometheus HTTP exposition
	"github.com/redis/go-redis/v9"                            // Redis client
	"github.com/sirupsen/logrus"                              // Logrus for structured logging
	"gorm.io/driver/mysql"                                    // MySQL driver for GORM
	"gorm.io/gorm"                                            // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client for the listing cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Persistence layer and authentication gate; the signing secret is
	// injected here and nowhere else.
	users := repository.NewUserRepository(db)
	stores := repository.NewStoreRepository(db)
	items := repository.NewItemRepository(db)
	authSvc := auth.NewService(users, cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default()

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Request id and HTTP metrics on every route
	if err := middleware.RegisterMetrics(nil); err != nil {
		logrus.Fatalf("failed to register metrics: %v", err)
	}
	r.Use(middleware.RequestID(), middleware.Metrics())

	// Auth routes
	r.POST("/register", api.RegisterHandler(users)) // Registration endpoint
	r.POST("/auth", api.LoginHandler(authSvc))      // Login endpoint

	// Item routes; only the single-item read requires a token
	r.GET("/item/:name", middleware.JWTAuthMiddleware(authSvc), api.GetItemHandler(items))
	r.POST("/item/:name", api.CreateItemHandler(items, redisClient))
	r.PUT("/item/:name", api.PutItemHandler(items, redisClient))
	r.DELETE("/item/:name", api.DeleteItemHandler(items, redisClient))
	r.GET("/items", api.ListItemsHandler(items, redisClient))

	// Store routes
	r.GET("/store/:name", api.GetStoreHandler(stores, items))
	r.POST("/store/:name", api.CreateStoreHandler(stores, redisClient))
	r.DELETE("/store/:name", api.DeleteStoreHandler(stores, redisClient))
	r.GET("/stores", api.ListStoresHandler(stores, items, redisClient))

	// Prometheus exposition
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
