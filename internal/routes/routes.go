package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ayurcare_backend/internal/handlers"
)

// RegisterRoutes registers every HTTP route. Authentication routes stay
// public; everything under /api/v1 goes through the auth middleware passed
// in by the caller.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, authMiddleware gin.HandlerFunc) {
	ginRouter.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to AyurCare API"})
	})

	public := ginRouter.Group("")
	{
		appHandlers.AuthHandler.RegisterRoutes(public)
	}

	api := ginRouter.Group("/api/v1")
	api.Use(authMiddleware)
	{
		appHandlers.AccountHandler.RegisterRoutes(api)
		appHandlers.IngredientHandler.RegisterRoutes(api)
		appHandlers.RecipeHandler.RegisterRoutes(api)
	}
}
