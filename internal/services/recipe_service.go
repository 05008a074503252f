package services

import (
	"context"

	"ayurcare_backend/internal/models"
	"ayurcare_backend/internal/repositories"
	"ayurcare_backend/internal/services/dto"
	"ayurcare_backend/pkg/apperrors"
)

type RecipeService interface {
	List(ctx context.Context) ([]models.Recipe, error)
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
	Create(ctx context.Context, req *dto.CreateRecipeRequest) (*models.Recipe, error)
}

type RecipeServiceImpl struct {
	recipeRepo repositories.RecipeRepository
}

func NewRecipeService(recipeRepo repositories.RecipeRepository) RecipeService {
	return &RecipeServiceImpl{recipeRepo: recipeRepo}
}

func (s *RecipeServiceImpl) List(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.recipeRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return recipes, nil
}

func (s *RecipeServiceImpl) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRecipeNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return recipe, nil
}

func (s *RecipeServiceImpl) Create(ctx context.Context, req *dto.CreateRecipeRequest) (*models.Recipe, error) {
	recipe := &models.Recipe{
		Name:                req.Name,
		Ingredients:         req.Ingredients,
		Instructions:        req.Instructions,
		DoshaProfile:        req.DoshaProfile,
		NutritionPerServing: req.NutritionPerServing,
	}

	if _, err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return recipe, nil
}
