package dto

import "ayurcare_backend/internal/models"

// UpdatePatientProfileRequest is the PUT /patients/:id/profile payload.
// Every section is optional; omitted sections are left untouched.
type UpdatePatientProfileRequest struct {
	BiologicalData       *models.BiologicalData `json:"biological_data,omitempty"`
	QuestionnaireAnswers map[string]int         `json:"questionnaire_answers,omitempty"`
	DoshaResult          *string                `json:"dosha_result,omitempty"`
	Allergies            []string               `json:"allergies,omitempty"`
	ApprovedFavor        []string               `json:"approved_favor_ingredients,omitempty"`
	ApprovedAvoid        []string               `json:"approved_avoid_ingredients,omitempty"`
}

// AssignDoctorRequest is the PUT /patients/:id/doctor payload.
type AssignDoctorRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
}
