package services

import (
	"context"

	"ayurcare_backend/internal/auth"
	"ayurcare_backend/internal/models"
	"ayurcare_backend/internal/repositories"
	"ayurcare_backend/internal/services/dto"
	"ayurcare_backend/pkg/apperrors"
)

type AccountService interface {
	GetPatient(ctx context.Context, actor *models.Account, patientID string) (*models.AccountPublic, error)
	UpdatePatientProfile(ctx context.Context, actor *models.Account, patientID string, req *dto.UpdatePatientProfileRequest) (*models.AccountPublic, error)
	AssignDoctor(ctx context.Context, patientID string, req *dto.AssignDoctorRequest) (*models.AccountPublic, error)
	ListDoctors(ctx context.Context) ([]models.AccountPublic, error)
	ListPatients(ctx context.Context) ([]models.AccountPublic, error)
}

type AccountServiceImpl struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountService {
	return &AccountServiceImpl{accountRepo: accountRepo}
}

// GetPatient returns a patient account, visible to any doctor and to the
// patient themselves.
func (s *AccountServiceImpl) GetPatient(ctx context.Context, actor *models.Account, patientID string) (*models.AccountPublic, error) {
	if !auth.DoctorOrSelf(actor, patientID) {
		return nil, apperrors.NewForbiddenError("You don't have permission to access this resource")
	}

	patient, err := s.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return patient.Public(), nil
}

// UpdatePatientProfile applies the provided profile sections, leaving
// omitted ones untouched. Gated by the doctor-or-self predicate.
func (s *AccountServiceImpl) UpdatePatientProfile(ctx context.Context, actor *models.Account, patientID string, req *dto.UpdatePatientProfileRequest) (*models.AccountPublic, error) {
	if !auth.DoctorOrSelf(actor, patientID) {
		return nil, apperrors.NewForbiddenError("You don't have permission to access this resource")
	}

	patient, err := s.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	profile := patient.PatientProfile
	if profile == nil {
		profile = models.NewPatientProfile()
	}

	if req.BiologicalData != nil {
		profile.BiologicalData = req.BiologicalData
	}
	if req.QuestionnaireAnswers != nil {
		profile.QuestionnaireAnswers = req.QuestionnaireAnswers
	}
	if req.DoshaResult != nil {
		profile.DoshaResult = *req.DoshaResult
	}
	if req.Allergies != nil {
		profile.Allergies = req.Allergies
	}
	if req.ApprovedFavor != nil {
		profile.ApprovedFavorIngredients = req.ApprovedFavor
	}
	if req.ApprovedAvoid != nil {
		profile.ApprovedAvoidIngredients = req.ApprovedAvoid
	}

	if err := s.accountRepo.UpdatePatientProfile(ctx, patientID, profile); err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	patient.PatientProfile = profile
	return patient.Public(), nil
}

// AssignDoctor points a patient's weak doctor reference at the given
// account, which must resolve to a doctor.
func (s *AccountServiceImpl) AssignDoctor(ctx context.Context, patientID string, req *dto.AssignDoctorRequest) (*models.AccountPublic, error) {
	patient, err := s.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	doctor, err := s.accountRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.NewBadRequestError("doctor_id does not resolve to an account")
		}
		return nil, apperrors.InternalError(err)
	}
	if doctor.Role != models.RoleDoctor {
		return nil, apperrors.NewBadRequestError("doctor_id does not refer to a doctor account")
	}

	if err := s.accountRepo.AssignDoctor(ctx, patientID, doctor.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if patient.PatientProfile == nil {
		patient.PatientProfile = models.NewPatientProfile()
	}
	assigned := doctor.ID
	patient.PatientProfile.AssignedDoctorID = &assigned
	return patient.Public(), nil
}

func (s *AccountServiceImpl) ListDoctors(ctx context.Context) ([]models.AccountPublic, error) {
	return s.listByRole(ctx, models.RoleDoctor)
}

func (s *AccountServiceImpl) ListPatients(ctx context.Context) ([]models.AccountPublic, error) {
	return s.listByRole(ctx, models.RolePatient)
}

func (s *AccountServiceImpl) listByRole(ctx context.Context, role models.Role) ([]models.AccountPublic, error) {
	accounts, err := s.accountRepo.FindByRole(ctx, role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]models.AccountPublic, 0, len(accounts))
	for i := range accounts {
		out = append(out, *accounts[i].Public())
	}
	return out, nil
}

func (s *AccountServiceImpl) findPatient(ctx context.Context, patientID string) (*models.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, patientID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if account.Role != models.RolePatient {
		return nil, apperrors.ErrNotFound(repositories.ErrAccountNotFound)
	}
	return account, nil
}
