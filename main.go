package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fintrack-be/internal/cache"
	"fintrack-be/internal/config"
	"fintrack-be/internal/controllers"
	"fintrack-be/internal/database"
	"fintrack-be/internal/jwt"
	"fintrack-be/internal/middleware"
	"fintrack-be/internal/password"
	"fintrack-be/internal/repository"
	"fintrack-be/internal/service"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg := config.Load()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// Connect to database
	db, err := database.NewConnection(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close() // Close connection when program exits

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		logger.Warnf("Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		logger.Info("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// Initialize JWT service (signing key is fixed for the process lifetime)
	jwtService, err := jwt.NewJWTService(cfg.JWTSecret)
	if err != nil {
		logger.Fatalf("Failed to initialize JWT service: %v", err)
	}

	// Initialize the password hashing worker pool
	hasher := password.NewHasher(cfg.HashWorkers)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, hasher, logger)
	categoryService := service.NewCategoryService(categoryRepo, cacheClient, logger)
	transactionService := service.NewTransactionService(transactionRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService, logger)
	categoryController := controllers.NewCategoryController(categoryService, logger)
	transactionController := controllers.NewTransactionController(transactionService, logger)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Public auth routes
	router.POST("/users/register", authController.Register)
	router.POST("/users/login", authController.Login)

	// Protected routes - require JWT authentication
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		protected.GET("/users/me", authController.Profile)
		protected.PATCH("/users/me", authController.ChangePassword)
		protected.DELETE("/users/me", authController.DeleteAccount)

		protected.POST("/categories", categoryController.Create)
		protected.GET("/categories", categoryController.List)
		protected.GET("/categories/:id", categoryController.Get)
		protected.DELETE("/categories/:id", categoryController.Delete)

		protected.POST("/transactions", transactionController.Create)
		protected.GET("/transactions", transactionController.List)
	}

	// Start the server
	logger.Infof("Server starting on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}
}
