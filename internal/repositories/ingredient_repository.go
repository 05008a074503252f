package repositories

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ayurcare_backend/internal/models"
)

var ErrIngredientNotFound = errors.New("ingredient not found")

type IngredientRepository interface {
	FindAll(ctx context.Context) ([]models.Ingredient, error)
	FindByName(ctx context.Context, name string) (*models.Ingredient, error)
	// ReplaceAll deletes every existing ingredient document and bulk-inserts
	// the new set. The two steps are not transactional: a crash in between
	// leaves the collection empty. Returns (deleted, inserted).
	ReplaceAll(ctx context.Context, records []models.Ingredient) (int64, int64, error)
	FindWithDuplicateDoshaStatus(ctx context.Context) ([]models.Ingredient, error)
}

type IngredientRepositoryImpl struct {
	collection *mongo.Collection
}

func NewIngredientRepository(db *mongo.Database, collectionName string) IngredientRepository {
	return &IngredientRepositoryImpl{collection: db.Collection(collectionName)}
}

func (r *IngredientRepositoryImpl) FindAll(ctx context.Context) ([]models.Ingredient, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ingredients := []models.Ingredient{}
	if err := cursor.All(ctx, &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *IngredientRepositoryImpl) FindByName(ctx context.Context, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&ingredient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

func (r *IngredientRepositoryImpl) ReplaceAll(ctx context.Context, records []models.Ingredient) (int64, int64, error) {
	if len(records) == 0 {
		// Callers guard against this; never wipe the collection for an
		// empty batch.
		return 0, 0, nil
	}

	deleteResult, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, 0, err
	}

	docs := make([]interface{}, 0, len(records))
	for i := range records {
		docs = append(docs, records[i])
	}

	insertResult, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return deleteResult.DeletedCount, 0, err
	}
	return deleteResult.DeletedCount, int64(len(insertResult.InsertedIDs)), nil
}

// FindWithDuplicateDoshaStatus returns every ingredient where a single
// dosha carries more than one status entry. Used for manual data-quality
// review, not enforcement.
func (r *IngredientRepositoryImpl) FindWithDuplicateDoshaStatus(ctx context.Context) ([]models.Ingredient, error) {
	counts := bson.D{}
	anyDuplicate := bson.A{}
	for _, dosha := range models.Doshas {
		field := strings.ToLower(dosha) + "_count"
		counts = append(counts, bson.E{Key: field, Value: bson.D{
			{Key: "$size", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$dosha_info." + dosha, bson.A{}}}}},
		}})
		anyDuplicate = append(anyDuplicate, bson.D{{Key: field, Value: bson.D{{Key: "$gt", Value: 1}}}})
	}

	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: counts}},
		{{Key: "$match", Value: bson.D{{Key: "$or", Value: anyDuplicate}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "category", Value: 1},
			{Key: "dosha_info", Value: 1},
			{Key: "_id", Value: 0},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ingredients := []models.Ingredient{}
	if err := cursor.All(ctx, &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}
