package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Dosha names used as keys in Ingredient.DoshaInfo.
const (
	DoshaVata  = "Vata"
	DoshaPitta = "Pitta"
	DoshaKapha = "Kapha"
)

// Doshas lists the three wellness categories in canonical order.
var Doshas = []string{DoshaVata, DoshaPitta, DoshaKapha}

// Recommendation statuses for an ingredient under a dosha.
const (
	StatusFavor = "Favor"
	StatusAvoid = "Avoid"
)

// DoshaStatus is one recommendation entry for an ingredient under a single
// dosha. An ingredient may carry several entries for the same dosha; that is
// legitimate source data, not an error.
type DoshaStatus struct {
	Status string `bson:"status" json:"status"`
	Notes  string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Ingredient is a document in the ingredients collection, keyed during
// import by its canonical name.
type Ingredient struct {
	ID        primitive.ObjectID       `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string                   `bson:"name" json:"name"`
	Category  string                   `bson:"category" json:"category"`
	DoshaInfo map[string][]DoshaStatus `bson:"dosha_info" json:"dosha_info"`
}
