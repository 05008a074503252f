package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayurcare_backend/internal/services/dto"
)

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:     "anna@example.com",
		Password:  "strong-password",
		Role:      "patient",
		FirstName: "Anna",
		LastName:  "Ivanova",
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	v := New()
	assert.NoError(t, v.Validate(validRegisterRequest()))
}

func TestValidate_RequiredAndEmail(t *testing.T) {
	t.Parallel()

	v := New()
	req := validRegisterRequest()
	req.Email = "not-an-email"
	req.FirstName = ""

	err := v.Validate(req)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	// Field names come from the json tags.
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "This field is required", vErr.Errors["first_name"])
}

func TestValidate_RoleRule(t *testing.T) {
	t.Parallel()

	v := New()
	req := validRegisterRequest()
	req.Role = "admin"

	err := v.Validate(req)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Role must be either doctor or patient", vErr.Errors["role"])
}
