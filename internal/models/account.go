package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of account roles. A role is fixed at registration;
// no operation changes it afterwards.
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleDoctor || r == RolePatient
}

// RegistrationStatus of a doctor's council registration.
type RegistrationStatus string

const (
	RegistrationActive      RegistrationStatus = "Active"
	RegistrationProvisional RegistrationStatus = "Provisional"
	RegistrationSuspended   RegistrationStatus = "Suspended"
	RegistrationExpired     RegistrationStatus = "Expired"
)

// BiologicalData holds the optional body metrics of a patient.
type BiologicalData struct {
	HeightCM      int     `bson:"height_cm" json:"height_cm" validate:"required,gt=0"`
	WeightKG      float64 `bson:"weight_kg" json:"weight_kg" validate:"required,gt=0"`
	Age           int     `bson:"age" json:"age" validate:"required,gt=0"`
	Gender        string  `bson:"gender" json:"gender" validate:"required,oneof=male female"`
	ActivityLevel string  `bson:"activity_level" json:"activity_level" validate:"required,oneof=sedentary light moderate active very_active"`
}

// PatientProfile is attached to patient accounts.
type PatientProfile struct {
	AssignedDoctorID         *primitive.ObjectID `bson:"assigned_doctor_id,omitempty" json:"assigned_doctor_id,omitempty"`
	BiologicalData           *BiologicalData     `bson:"biological_data,omitempty" json:"biological_data,omitempty"`
	QuestionnaireAnswers     map[string]int      `bson:"questionnaire_answers,omitempty" json:"questionnaire_answers,omitempty"`
	DoshaResult              string              `bson:"dosha_result,omitempty" json:"dosha_result,omitempty"`
	Allergies                []string            `bson:"allergies" json:"allergies"`
	ApprovedFavorIngredients []string            `bson:"approved_favor_ingredients" json:"approved_favor_ingredients"`
	ApprovedAvoidIngredients []string            `bson:"approved_avoid_ingredients" json:"approved_avoid_ingredients"`
}

// NewPatientProfile returns an empty profile with all lists initialized, so
// documents never carry null arrays.
func NewPatientProfile() *PatientProfile {
	return &PatientProfile{
		Allergies:                []string{},
		ApprovedFavorIngredients: []string{},
		ApprovedAvoidIngredients: []string{},
	}
}

// DoctorProfile is attached to doctor accounts.
type DoctorProfile struct {
	RegistrationNumber       string             `bson:"registration_number" json:"registration_number" validate:"required"`
	IssuingCouncil           string             `bson:"issuing_council" json:"issuing_council" validate:"required"`
	StateOfRegistration      string             `bson:"state_of_registration" json:"state_of_registration" validate:"required"`
	RegistrationDate         time.Time          `bson:"registration_date" json:"registration_date" validate:"required"`
	RegistrationValidityDate time.Time          `bson:"registration_validity_date" json:"registration_validity_date" validate:"required"`
	RegistrationStatus       RegistrationStatus `bson:"registration_status" json:"registration_status" validate:"required,oneof=Active Provisional Suspended Expired"`
}

// Account is a document in the accounts collection. Email is unique across
// all accounts.
type Account struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	FirstName      string             `bson:"first_name" json:"first_name"`
	LastName       string             `bson:"last_name" json:"last_name"`
	Role           Role               `bson:"role" json:"role"`
	DoctorProfile  *DoctorProfile     `bson:"doctor_profile,omitempty" json:"doctor_profile,omitempty"`
	PatientProfile *PatientProfile    `bson:"patient_profile,omitempty" json:"patient_profile,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// AccountPublic is the client-facing shape of an account. The password hash
// is never serialized.
type AccountPublic struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Role           Role            `json:"role"`
	DoctorProfile  *DoctorProfile  `json:"doctor_profile,omitempty"`
	PatientProfile *PatientProfile `json:"patient_profile,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Public converts an account to its client-facing shape.
func (a *Account) Public() *AccountPublic {
	return &AccountPublic{
		ID:             a.ID.Hex(),
		Email:          a.Email,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Role:           a.Role,
		DoctorProfile:  a.DoctorProfile,
		PatientProfile: a.PatientProfile,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
