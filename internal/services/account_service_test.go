package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ayurcare_backend/internal/models"
	"ayurcare_backend/internal/services/dto"
	"ayurcare_backend/pkg/apperrors"
)

func newTestAccounts() (doctor, patient, otherPatient *models.Account) {
	doctor = &models.Account{
		ID:        primitive.NewObjectID(),
		Email:     "doctor@example.com",
		FirstName: "Dana",
		Role:      models.RoleDoctor,
	}
	patient = &models.Account{
		ID:             primitive.NewObjectID(),
		Email:          "patient@example.com",
		FirstName:      "Pavel",
		Role:           models.RolePatient,
		PatientProfile: models.NewPatientProfile(),
	}
	otherPatient = &models.Account{
		ID:             primitive.NewObjectID(),
		Email:          "other@example.com",
		FirstName:      "Olga",
		Role:           models.RolePatient,
		PatientProfile: models.NewPatientProfile(),
	}
	return doctor, patient, otherPatient
}

func assertHTTPCode(t *testing.T, err error, want int) {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, want, appErr.HTTPCode)
}

func TestAccountService_GetPatient_Access(t *testing.T) {
	t.Parallel()

	doctor, patient, otherPatient := newTestAccounts()
	service := NewAccountService(newFakeAccountRepo(doctor, patient, otherPatient))

	// Any doctor may read any patient.
	public, err := service.GetPatient(context.Background(), doctor, patient.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, patient.Email, public.Email)

	// A patient may read themselves.
	public, err = service.GetPatient(context.Background(), patient, patient.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, patient.Email, public.Email)

	// But not another patient.
	_, err = service.GetPatient(context.Background(), patient, otherPatient.ID.Hex())
	assertHTTPCode(t, err, http.StatusForbidden)
}

func TestAccountService_GetPatient_NotFound(t *testing.T) {
	t.Parallel()

	doctor, patient, _ := newTestAccounts()
	service := NewAccountService(newFakeAccountRepo(doctor, patient))

	_, err := service.GetPatient(context.Background(), doctor, primitive.NewObjectID().Hex())
	assertHTTPCode(t, err, http.StatusNotFound)

	// A doctor account is never served from a patient endpoint.
	_, err = service.GetPatient(context.Background(), doctor, doctor.ID.Hex())
	assertHTTPCode(t, err, http.StatusNotFound)
}

func TestAccountService_UpdatePatientProfile_MergesSections(t *testing.T) {
	t.Parallel()

	doctor, patient, _ := newTestAccounts()
	patient.PatientProfile.Allergies = []string{"peanuts"}
	repo := newFakeAccountRepo(doctor, patient)
	service := NewAccountService(repo)

	doshaResult := "Vata-Pitta"
	public, err := service.UpdatePatientProfile(context.Background(), doctor, patient.ID.Hex(), &dto.UpdatePatientProfileRequest{
		DoshaResult: &doshaResult,
		QuestionnaireAnswers: map[string]int{
			"q1": 3,
		},
	})
	require.NoError(t, err)

	require.NotNil(t, public.PatientProfile)
	assert.Equal(t, "Vata-Pitta", public.PatientProfile.DoshaResult)
	assert.Equal(t, map[string]int{"q1": 3}, public.PatientProfile.QuestionnaireAnswers)
	// Omitted sections stay untouched.
	assert.Equal(t, []string{"peanuts"}, public.PatientProfile.Allergies)

	stored, err := repo.FindByID(context.Background(), patient.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Vata-Pitta", stored.PatientProfile.DoshaResult)
}

func TestAccountService_UpdatePatientProfile_Forbidden(t *testing.T) {
	t.Parallel()

	doctor, patient, otherPatient := newTestAccounts()
	service := NewAccountService(newFakeAccountRepo(doctor, patient, otherPatient))

	doshaResult := "Kapha"
	_, err := service.UpdatePatientProfile(context.Background(), otherPatient, patient.ID.Hex(), &dto.UpdatePatientProfileRequest{
		DoshaResult: &doshaResult,
	})
	assertHTTPCode(t, err, http.StatusForbidden)
}

func TestAccountService_AssignDoctor(t *testing.T) {
	t.Parallel()

	doctor, patient, _ := newTestAccounts()
	repo := newFakeAccountRepo(doctor, patient)
	service := NewAccountService(repo)

	public, err := service.AssignDoctor(context.Background(), patient.ID.Hex(), &dto.AssignDoctorRequest{
		DoctorID: doctor.ID.Hex(),
	})
	require.NoError(t, err)

	require.NotNil(t, public.PatientProfile)
	require.NotNil(t, public.PatientProfile.AssignedDoctorID)
	assert.Equal(t, doctor.ID, *public.PatientProfile.AssignedDoctorID)
}

func TestAccountService_AssignDoctor_TargetMustBeDoctor(t *testing.T) {
	t.Parallel()

	doctor, patient, otherPatient := newTestAccounts()
	service := NewAccountService(newFakeAccountRepo(doctor, patient, otherPatient))

	_, err := service.AssignDoctor(context.Background(), patient.ID.Hex(), &dto.AssignDoctorRequest{
		DoctorID: otherPatient.ID.Hex(),
	})
	assertHTTPCode(t, err, http.StatusBadRequest)

	_, err = service.AssignDoctor(context.Background(), patient.ID.Hex(), &dto.AssignDoctorRequest{
		DoctorID: primitive.NewObjectID().Hex(),
	})
	assertHTTPCode(t, err, http.StatusBadRequest)
}

func TestAccountService_ListByRole(t *testing.T) {
	t.Parallel()

	doctor, patient, otherPatient := newTestAccounts()
	service := NewAccountService(newFakeAccountRepo(doctor, patient, otherPatient))

	doctors, err := service.ListDoctors(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, doctor.Email, doctors[0].Email)

	patients, err := service.ListPatients(context.Background())
	require.NoError(t, err)
	assert.Len(t, patients, 2)
}
