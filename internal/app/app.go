package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"ayurcare_backend/internal/config"
	"ayurcare_backend/internal/handlers"
	"ayurcare_backend/internal/logger"
	"ayurcare_backend/internal/middleware"
	"ayurcare_backend/internal/repositories"
	"ayurcare_backend/internal/routes"
	"ayurcare_backend/internal/services"
	"ayurcare_backend/internal/storage"
	"ayurcare_backend/internal/validator"
)

// Run wires the whole application and starts the HTTP server.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to document store...", "uri", cfg.Mongo.URI)
	client, err := storage.Connect(context.Background(), cfg.Mongo.URI)
	if err != nil {
		logger.Fatal("Document store unavailable", "error", err)
	}
	defer storage.Disconnect(client)

	db := client.Database(cfg.Mongo.Database)

	ginRouter := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the Gin engine with every dependency injected. Split
// out of Run so tests can build a router against their own database handle.
func SetupRouter(cfg *config.Config, db *mongo.Database) *gin.Engine {
	// Repositories
	accountRepo := repositories.NewAccountRepository(db)
	ingredientRepo := repositories.NewIngredientRepository(db, cfg.Mongo.IngredientCollection)
	recipeRepo := repositories.NewRecipeRepository(db)

	// Services
	jwtSecret := []byte(cfg.JWT.Secret)
	tokenTTL := time.Duration(cfg.JWT.TTLMinutes) * time.Minute
	authService := services.NewAuthService(accountRepo, jwtSecret, tokenTTL)
	accountService := services.NewAccountService(accountRepo)
	ingredientService := services.NewIngredientService(ingredientRepo)
	recipeService := services.NewRecipeService(recipeRepo)

	// Handlers
	baseHandler := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, authService),
		AccountHandler:    handlers.NewAccountHandler(baseHandler, accountService),
		IngredientHandler: handlers.NewIngredientHandler(baseHandler, ingredientService),
		RecipeHandler:     handlers.NewRecipeHandler(baseHandler, recipeService),
	}

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AuthMiddleware(jwtSecret, accountRepo))

	return ginRouter
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	return ginRouter
}
