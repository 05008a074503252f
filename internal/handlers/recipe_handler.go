package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ayurcare_backend/internal/middleware"
	"ayurcare_backend/internal/services"
	"ayurcare_backend/internal/services/dto"
)

type RecipeHandler struct {
	*BaseHandler
	recipeService services.RecipeService
}

func NewRecipeHandler(base *BaseHandler, recipeService services.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		BaseHandler:   base,
		recipeService: recipeService,
	}
}

// RegisterRoutes registers the recipe routes on an authenticated group.
func (h *RecipeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.GET("/:id", h.GetByID)
		recipes.POST("", middleware.RequireDoctor(), h.Create)
	}
}

func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipeService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetByID(c *gin.Context) {
	recipe, err := h.recipeService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req dto.CreateRecipeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}
