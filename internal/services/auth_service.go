package services

import (
	"context"
	"time"

	"ayurcare_backend/internal/auth"
	"ayurcare_backend/internal/models"
	"ayurcare_backend/internal/repositories"
	"ayurcare_backend/internal/services/dto"
	"ayurcare_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.AccountPublic, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type AuthServiceImpl struct {
	accountRepo repositories.AccountRepository
	jwtSecret   []byte
	tokenTTL    time.Duration
}

func NewAuthService(accountRepo repositories.AccountRepository, jwtSecret []byte, tokenTTL time.Duration) AuthService {
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
	}
}

// Register creates a new account. The role is fixed here and never changes
// afterwards; patients start with an empty profile so the list fields are
// present from day one.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.AccountPublic, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	account := &models.Account{
		Email:          req.Email,
		HashedPassword: hashedPassword,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Role:           role,
	}
	if role == models.RolePatient {
		account.PatientProfile = models.NewPatientProfile()
	}

	if _, err := s.accountRepo.Create(ctx, account); err != nil {
		if apperrors.Is(err, repositories.ErrAccountAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return account.Public(), nil
}

// Login verifies credentials and mints a bearer token. Unknown email and
// wrong password share one error so neither case is revealed.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	account, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, account.HashedPassword) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateToken(s.jwtSecret, account.ID.Hex(), account.Role, s.tokenTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}
