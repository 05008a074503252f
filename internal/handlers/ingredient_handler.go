package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ayurcare_backend/internal/middleware"
	"ayurcare_backend/internal/services"
)

type IngredientHandler struct {
	*BaseHandler
	ingredientService services.IngredientService
}

func NewIngredientHandler(base *BaseHandler, ingredientService services.IngredientService) *IngredientHandler {
	return &IngredientHandler{
		BaseHandler:       base,
		ingredientService: ingredientService,
	}
}

// RegisterRoutes registers the ingredient routes on an authenticated group.
func (h *IngredientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ingredients := rg.Group("/ingredients")
	{
		ingredients.GET("", h.List)
		// Registered before /:name so the literal segment wins.
		ingredients.GET("/review/duplicates", middleware.RequireDoctor(), h.ReviewDuplicates)
		ingredients.GET("/:name", h.GetByName)
	}
}

func (h *IngredientHandler) List(c *gin.Context) {
	ingredients, err := h.ingredientService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func (h *IngredientHandler) GetByName(c *gin.Context) {
	ingredient, err := h.ingredientService.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// ReviewDuplicates serves the data-quality view of ingredients with more
// than one status entry under a single dosha.
func (h *IngredientHandler) ReviewDuplicates(c *gin.Context) {
	ingredients, err := h.ingredientService.FindDuplicateDoshaStatus(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}
