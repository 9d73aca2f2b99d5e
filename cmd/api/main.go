package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"finera/internal/ai"
	"finera/internal/config"
	"finera/internal/database"
	"finera/internal/document"
	"finera/internal/handlers"
	"finera/internal/logger"
	"finera/internal/middleware"
	"finera/internal/services"
	"finera/internal/validator"

	_ "finera/internal/docs" // Import swagger docs
)

// @title           Finera API
// @version         1.0
// @description     Finera ingests bank statements, extracts their transactions with AI providers, and organizes them into monthly bookkeeping periods.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

// buildProviderRegistry registers an adapter for every provider with a
// configured API key. Selecting an unregistered provider later fails as a
// configuration error at the API boundary.
func buildProviderRegistry(cfg *config.Config) (*ai.Registry, error) {
	log := logger.Get()
	registry := ai.NewRegistry()

	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		registry.RegisterExtractor(ai.ProviderGemini, gemini)
		registry.RegisterAdvisor(ai.ProviderGemini, gemini)
		log.Infow("registered AI provider", "provider", ai.ProviderGemini, "model", cfg.GeminiModel)
	}

	if cfg.OpenAIAPIKey != "" {
		openai := ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		registry.RegisterExtractor(ai.ProviderOpenAI, openai)
		registry.RegisterAdvisor(ai.ProviderOpenAI, openai)
		log.Infow("registered AI provider", "provider", ai.ProviderOpenAI, "model", cfg.OpenAIModel)
	}

	if cfg.DeepSeekAPIKey != "" {
		deepseek := ai.NewDeepSeekClient(cfg.DeepSeekAPIKey, cfg.DeepSeekModel)
		registry.RegisterExtractor(ai.ProviderDeepSeek, deepseek)
		registry.RegisterAdvisor(ai.ProviderDeepSeek, deepseek)
		log.Infow("registered AI provider", "provider", ai.ProviderDeepSeek, "model", cfg.DeepSeekModel)
	}

	return registry, nil
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// AI provider registry and document text-extraction collaborator
	registry, err := buildProviderRegistry(appConfig)
	if err != nil {
		return err
	}
	extractor := document.NewClient(appConfig.DocumentExtractorURL)

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	periodService := services.NewPeriodService(db)
	sourceService := services.NewSourceService(db)
	statementService := services.NewStatementService(db, extractor, registry, categoryService, periodService, sourceService)
	transactionService := services.NewTransactionService(db, categoryService, periodService, sourceService)
	summaryService := services.NewSummaryService(db, periodService)
	savingsService := services.NewSavingsService(registry)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	statementHandler := handlers.NewStatementHandler(statementService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	summaryHandler := handlers.NewSummaryHandler(summaryService, savingsService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile/email", authHandler.UpdateEmail)
	protected.PUT("/profile/password", authHandler.UpdatePassword)

	// Category routes
	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)

	// Statement ingestion
	statements := protected.Group("/statements")
	statements.POST("/upload", statementHandler.UploadStatement)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("/manual", transactionHandler.CreateManualTransaction)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)

	// Period routes
	periods := protected.Group("/periods")
	periods.GET("/:year/:month/transactions", transactionHandler.GetPeriodTransactions)
	periods.GET("/:year/:month/summary", summaryHandler.GetPeriodSummary)

	// Savings recommendations
	protected.POST("/savings/recommendations", summaryHandler.GetSavingsRecommendations)

	log.Infof("Starting Finera backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
