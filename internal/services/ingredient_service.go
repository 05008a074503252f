package services

import (
	"context"

	"ayurcare_backend/internal/models"
	"ayurcare_backend/internal/repositories"
	"ayurcare_backend/pkg/apperrors"
)

type IngredientService interface {
	List(ctx context.Context) ([]models.Ingredient, error)
	GetByName(ctx context.Context, name string) (*models.Ingredient, error)
	// FindDuplicateDoshaStatus lists ingredients flagged by the data-quality
	// query: any dosha with more than one status entry.
	FindDuplicateDoshaStatus(ctx context.Context) ([]models.Ingredient, error)
}

type IngredientServiceImpl struct {
	ingredientRepo repositories.IngredientRepository
}

func NewIngredientService(ingredientRepo repositories.IngredientRepository) IngredientService {
	return &IngredientServiceImpl{ingredientRepo: ingredientRepo}
}

func (s *IngredientServiceImpl) List(ctx context.Context) ([]models.Ingredient, error) {
	ingredients, err := s.ingredientRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ingredients, nil
}

func (s *IngredientServiceImpl) GetByName(ctx context.Context, name string) (*models.Ingredient, error) {
	ingredient, err := s.ingredientRepo.FindByName(ctx, name)
	if err != nil {
		if apperrors.Is(err, repositories.ErrIngredientNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return ingredient, nil
}

func (s *IngredientServiceImpl) FindDuplicateDoshaStatus(ctx context.Context) ([]models.Ingredient, error) {
	ingredients, err := s.ingredientRepo.FindWithDuplicateDoshaStatus(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ingredients, nil
}
