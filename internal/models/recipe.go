package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DoshaProfile scores a recipe against the three doshas.
type DoshaProfile struct {
	VataScore  int `bson:"vata_score" json:"vata_score"`
	PittaScore int `bson:"pitta_score" json:"pitta_score"`
	KaphaScore int `bson:"kapha_score" json:"kapha_score"`
}

// NutritionInfo holds per-serving nutrition facts.
type NutritionInfo struct {
	Calories      float64 `bson:"calories" json:"calories"`
	FatG          float64 `bson:"fat_g" json:"fat_g"`
	SaturatedFatG float64 `bson:"saturated_fat_g" json:"saturated_fat_g"`
	CholesterolMG float64 `bson:"cholesterol_mg" json:"cholesterol_mg"`
	SodiumMG      float64 `bson:"sodium_mg" json:"sodium_mg"`
	CarbohydrateG float64 `bson:"carbohydrate_g" json:"carbohydrate_g"`
	FiberG        float64 `bson:"fiber_g" json:"fiber_g"`
	SugarG        float64 `bson:"sugar_g" json:"sugar_g"`
	ProteinG      float64 `bson:"protein_g" json:"protein_g"`
}

// Recipe is a document in the recipes collection.
type Recipe struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name                string             `bson:"name" json:"name"`
	Ingredients         []string           `bson:"ingredients" json:"ingredients"`
	Instructions        string             `bson:"instructions" json:"instructions"`
	DoshaProfile        DoshaProfile       `bson:"dosha_profile" json:"dosha_profile"`
	NutritionPerServing NutritionInfo      `bson:"nutrition_per_serving" json:"nutrition_per_serving"`
}
