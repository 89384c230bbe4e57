package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"property-listings-api/internal/auth"
	"property-listings-api/internal/cleanup"
	"property-listings-api/internal/config"
	"property-listings-api/internal/contact"
	"property-listings-api/internal/database"
	"property-listings-api/internal/handlers"
	"property-listings-api/internal/images"
	"property-listings-api/internal/property"
	"property-listings-api/internal/scheduler"
	"property-listings-api/internal/search"
)

func main() {
	godotenv.Load()

	// Load configuration
	configPath := getEnv("CONFIG_PATH", "config/config.yaml")
	appConfig, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: failed to load config from %s: %v. Using defaults.", configPath, err)
		appConfig = config.DefaultConfig()
	} else {
		log.Printf("Loaded configuration from %s", configPath)
	}

	// Connect to MySQL
	mysqlCfg := appConfig.Database.MySQL
	portStr := ""
	if mysqlCfg.Port > 0 {
		portStr = strconv.Itoa(mysqlCfg.Port)
	}

	db, err := database.NewGormDB(
		getEnvOrConfig(mysqlCfg.Host, "DB_HOST", "localhost"),
		getEnvOrConfig(portStr, "DB_PORT", "3306"),
		getEnvOrConfig(mysqlCfg.User, "DB_USER", "listings_user"),
		getEnvOrConfig(mysqlCfg.Password, "DB_PASSWORD", "listings_pass"),
		getEnvOrConfig(mysqlCfg.Database, "DB_NAME", "listings_db"),
	)
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	// Initialize Meilisearch when enabled
	var searchClient *search.Client
	if appConfig.Search.Meilisearch.Enabled {
		host := getEnvOrConfig(appConfig.Search.Meilisearch.Host, "MEILISEARCH_HOST", "http://localhost:7700")
		apiKey := getEnvOrConfig(appConfig.Search.Meilisearch.APIKey, "MEILISEARCH_KEY", "")

		searchClient = search.NewClient(host, apiKey)
		if err := searchClient.InitIndex(); err != nil {
			log.Printf("Warning: failed to initialize search index: %v", err)
		}
	} else {
		log.Println("Search index disabled; free-text search falls back to SQL")
	}

	// Token manager and auth
	jwtSecret := getEnvOrConfig(appConfig.JWT.Secret, "JWT_SECRET", "")
	if jwtSecret == "" {
		log.Fatal("JWT secret is not configured (set jwt.secret or JWT_SECRET)")
	}
	tokenManager := auth.NewTokenManager(jwtSecret, appConfig.JWT.AccessTTL(), appConfig.JWT.RefreshTTL())

	// Services
	authService := auth.NewService(db, tokenManager)
	authMiddleware := auth.NewMiddleware(db, tokenManager)

	var indexer property.Indexer
	if searchClient != nil {
		indexer = searchClient
	}
	propertyService := property.NewService(db, indexer)
	imageService := images.NewService(db, appConfig.Upload.Dir, appConfig.Upload.BaseURL)
	contactService := contact.NewService(db)

	var indexRemover cleanup.IndexRemover
	if searchClient != nil {
		indexRemover = searchClient
	}
	cleanupService := cleanup.NewService(db.DB(), imageService, indexRemover)

	// Scheduler for nightly maintenance
	appScheduler := scheduler.NewScheduler(db.DB(), cleanupService, searchClient, appConfig)
	if err := appScheduler.Start(); err != nil {
		log.Printf("Warning: failed to start scheduler: %v", err)
	}
	defer appScheduler.Stop()

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	imageHandler := handlers.NewImageHandler(imageService)
	contactHandler := handlers.NewContactHandler(contactService)
	adminHandler := handlers.NewAdminHandler(db, cleanupService, appScheduler, contactService)

	// Setup Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Routes
	r.GET("/health", healthCheck)
	r.Static("/uploads/properties", appConfig.Upload.Dir)

	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/refresh", authHandler.Refresh)

		api.POST("/contact", contactHandler.Create)

		api.GET("/properties", propertyHandler.List)
		api.GET("/properties/search", propertyHandler.Search)
		api.GET("/properties/city/:city", propertyHandler.ByCity)
		api.GET("/properties/user/:userId", propertyHandler.ByUser)
		api.GET("/properties/:id", propertyHandler.Get)
	}

	authed := api.Group("")
	authed.Use(authMiddleware.RequireAuth())
	{
		authed.GET("/properties/my", propertyHandler.Mine)
		authed.POST("/properties", propertyHandler.Create)
		authed.PUT("/properties/:id", propertyHandler.Update)
		authed.DELETE("/properties/:id", propertyHandler.Delete)

		authed.POST("/properties/:id/images", imageHandler.Upload)
		authed.GET("/properties/:id/images", imageHandler.List)
		authed.DELETE("/properties/:id/images/:imageId", imageHandler.Delete)
	}

	admin := api.Group("/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	{
		admin.GET("/stats", adminHandler.GetStats)
		admin.GET("/users", adminHandler.GetAllUsers)
		admin.GET("/pending-agents", adminHandler.GetPendingAgents)
		admin.PUT("/users/:id/approve", adminHandler.ApproveAgent)
		admin.DELETE("/users/:id/reject", adminHandler.RejectAgent)
		admin.GET("/contacts", adminHandler.GetRecentContacts)

		admin.POST("/cleanup/run", adminHandler.RunCleanup)
		admin.GET("/cleanup/logs", adminHandler.GetCleanupLogs)
		admin.POST("/search/reindex", adminHandler.Reindex)
	}

	port := getEnvOrConfig(appConfig.Server.Port, "PORT", "8080")
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrConfig prefers the config value, then the environment, then a default.
func getEnvOrConfig(configValue, envKey, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	return getEnv(envKey, defaultValue)
}
