package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ayurcare_backend/internal/models"
)

var ErrRecipeNotFound = errors.New("recipe not found")

const recipeCollection = "recipes"

type RecipeRepository interface {
	FindAll(ctx context.Context) ([]models.Recipe, error)
	FindByID(ctx context.Context, id string) (*models.Recipe, error)
	Create(ctx context.Context, recipe *models.Recipe) (string, error)
}

type RecipeRepositoryImpl struct {
	collection *mongo.Collection
}

func NewRecipeRepository(db *mongo.Database) RecipeRepository {
	return &RecipeRepositoryImpl{collection: db.Collection(recipeCollection)}
}

func (r *RecipeRepositoryImpl) FindAll(ctx context.Context) ([]models.Recipe, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	recipes := []models.Recipe{}
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *RecipeRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Recipe, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrRecipeNotFound
	}

	var recipe models.Recipe
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&recipe)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *RecipeRepositoryImpl) Create(ctx context.Context, recipe *models.Recipe) (string, error) {
	recipe.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, recipe); err != nil {
		return "", err
	}
	return recipe.ID.Hex(), nil
}
