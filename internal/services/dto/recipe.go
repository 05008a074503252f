package dto

import "ayurcare_backend/internal/models"

// CreateRecipeRequest is the POST /recipes payload.
type CreateRecipeRequest struct {
	Name                string               `json:"name" validate:"required"`
	Ingredients         []string             `json:"ingredients" validate:"required,min=1"`
	Instructions        string               `json:"instructions" validate:"required"`
	DoshaProfile        models.DoshaProfile  `json:"dosha_profile"`
	NutritionPerServing models.NutritionInfo `json:"nutrition_per_serving"`
}
