package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ayurcare_backend/internal/models"
	"ayurcare_backend/internal/repositories"
)

// fakeAccountRepo is an in-memory stand-in for the accounts collection,
// keyed by hex object id.
type fakeAccountRepo struct {
	accounts map[string]*models.Account
}

func newFakeAccountRepo(accounts ...*models.Account) *fakeAccountRepo {
	repo := &fakeAccountRepo{accounts: map[string]*models.Account{}}
	for _, a := range accounts {
		repo.accounts[a.ID.Hex()] = a
	}
	return repo
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id string) (*models.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, repositories.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, account := range r.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, repositories.ErrAccountNotFound
}

func (r *fakeAccountRepo) Create(_ context.Context, account *models.Account) (string, error) {
	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return "", repositories.ErrAccountAlreadyExists
		}
	}
	now := time.Now().UTC()
	account.ID = primitive.NewObjectID()
	account.CreatedAt = now
	account.UpdatedAt = now
	stored := *account
	r.accounts[account.ID.Hex()] = &stored
	return account.ID.Hex(), nil
}

func (r *fakeAccountRepo) UpdatePatientProfile(_ context.Context, id string, profile *models.PatientProfile) error {
	account, ok := r.accounts[id]
	if !ok {
		return repositories.ErrAccountNotFound
	}
	account.PatientProfile = profile
	account.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakeAccountRepo) AssignDoctor(_ context.Context, patientID string, doctorID primitive.ObjectID) error {
	account, ok := r.accounts[patientID]
	if !ok {
		return repositories.ErrAccountNotFound
	}
	if account.PatientProfile == nil {
		account.PatientProfile = models.NewPatientProfile()
	}
	assigned := doctorID
	account.PatientProfile.AssignedDoctorID = &assigned
	return nil
}

func (r *fakeAccountRepo) FindByRole(_ context.Context, role models.Role) ([]models.Account, error) {
	accounts := []models.Account{}
	for _, account := range r.accounts {
		if account.Role == role {
			accounts = append(accounts, *account)
		}
	}
	return accounts, nil
}

// fakeIngredientRepo records ReplaceAll calls for the import pipeline tests.
type fakeIngredientRepo struct {
	stored       []models.Ingredient
	replaceCalls int
	deleted      int64
}

func (r *fakeIngredientRepo) ReplaceAll(_ context.Context, ingredients []models.Ingredient) (int64, int64, error) {
	r.replaceCalls++
	deleted := r.deleted
	r.stored = append([]models.Ingredient{}, ingredients...)
	return deleted, int64(len(ingredients)), nil
}

func (r *fakeIngredientRepo) FindAll(_ context.Context) ([]models.Ingredient, error) {
	return append([]models.Ingredient{}, r.stored...), nil
}

func (r *fakeIngredientRepo) FindByName(_ context.Context, name string) (*models.Ingredient, error) {
	for i := range r.stored {
		if r.stored[i].Name == name {
			copied := r.stored[i]
			return &copied, nil
		}
	}
	return nil, repositories.ErrIngredientNotFound
}

func (r *fakeIngredientRepo) FindWithDuplicateDoshaStatus(_ context.Context) ([]models.Ingredient, error) {
	duplicates := []models.Ingredient{}
	for _, ing := range r.stored {
		for _, statuses := range ing.DoshaInfo {
			if len(statuses) > 1 {
				duplicates = append(duplicates, ing)
				break
			}
		}
	}
	return duplicates, nil
}
