package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayurcare_backend/internal/auth"
	"ayurcare_backend/internal/models"
	"ayurcare_backend/internal/services/dto"
	"ayurcare_backend/pkg/apperrors"
)

var testJWTSecret = []byte("test-secret")

func newTestAuthService(repo *fakeAccountRepo) AuthService {
	return NewAuthService(repo, testJWTSecret, 30*time.Minute)
}

func registerRequest(role string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:     "anna@example.com",
		Password:  "strong-password",
		Role:      role,
		FirstName: "Anna",
		LastName:  "Ivanova",
	}
}

func TestAuthService_Register_Patient(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	service := newTestAuthService(repo)

	public, err := service.Register(context.Background(), registerRequest("patient"))
	require.NoError(t, err)

	assert.Equal(t, "anna@example.com", public.Email)
	assert.Equal(t, models.RolePatient, public.Role)
	require.NotNil(t, public.PatientProfile, "patients start with an empty profile")
	assert.Empty(t, public.PatientProfile.Allergies)

	stored, err := repo.FindByEmail(context.Background(), "anna@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "strong-password", stored.HashedPassword, "password is stored hashed")
	assert.True(t, auth.CheckPasswordHash("strong-password", stored.HashedPassword))
}

func TestAuthService_Register_Doctor_NoPatientProfile(t *testing.T) {
	t.Parallel()

	service := newTestAuthService(newFakeAccountRepo())

	public, err := service.Register(context.Background(), registerRequest("doctor"))
	require.NoError(t, err)
	assert.Equal(t, models.RoleDoctor, public.Role)
	assert.Nil(t, public.PatientProfile)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	service := newTestAuthService(newFakeAccountRepo())

	_, err := service.Register(context.Background(), registerRequest("patient"))
	require.NoError(t, err)

	_, err = service.Register(context.Background(), registerRequest("doctor"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	t.Parallel()

	service := newTestAuthService(newFakeAccountRepo())

	req := registerRequest("patient")
	req.Password = "short"
	_, err := service.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	t.Parallel()

	service := newTestAuthService(newFakeAccountRepo())

	_, err := service.Register(context.Background(), registerRequest("admin"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	service := newTestAuthService(repo)

	_, err := service.Register(context.Background(), registerRequest("doctor"))
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "anna@example.com",
		Password: "strong-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)

	account, err := repo.FindByEmail(context.Background(), "anna@example.com")
	require.NoError(t, err)

	claims, err := auth.ParseToken(testJWTSecret, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID.Hex(), claims.Subject)
	assert.Equal(t, models.RoleDoctor, claims.Role)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	service := newTestAuthService(newFakeAccountRepo())

	_, err := service.Register(context.Background(), registerRequest("patient"))
	require.NoError(t, err)

	// Unknown email and wrong password surface the same error.
	_, err = service.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "strong-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), &dto.LoginRequest{
		Email:    "anna@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
