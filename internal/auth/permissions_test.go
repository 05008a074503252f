package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ayurcare_backend/internal/models"
)

func accountWithRole(role models.Role) *models.Account {
	return &models.Account{
		ID:   primitive.NewObjectID(),
		Role: role,
	}
}

func TestIsDoctor(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDoctor(accountWithRole(models.RoleDoctor)))
	assert.False(t, IsDoctor(accountWithRole(models.RolePatient)))
	assert.False(t, IsDoctor(nil))
}

func TestIsPatient(t *testing.T) {
	t.Parallel()

	assert.True(t, IsPatient(accountWithRole(models.RolePatient)))
	assert.False(t, IsPatient(accountWithRole(models.RoleDoctor)))
	assert.False(t, IsPatient(nil))
}

func TestDoctorOrSelf(t *testing.T) {
	t.Parallel()

	doctor := accountWithRole(models.RoleDoctor)
	patient := accountWithRole(models.RolePatient)
	other := accountWithRole(models.RolePatient)

	assert.True(t, DoctorOrSelf(doctor, other.ID.Hex()), "doctor may access any resource")
	assert.True(t, DoctorOrSelf(patient, patient.ID.Hex()), "patient may access own resource")
	assert.False(t, DoctorOrSelf(patient, other.ID.Hex()), "patient may not access another patient")
	assert.False(t, DoctorOrSelf(patient, ""), "empty owner id never matches")
	assert.False(t, DoctorOrSelf(nil, patient.ID.Hex()))
}
