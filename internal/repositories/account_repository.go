package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ayurcare_backend/internal/models"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
)

const accountCollection = "accounts"

type AccountRepository interface {
	FindByID(ctx context.Context, id string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) (string, error)
	UpdatePatientProfile(ctx context.Context, id string, profile *models.PatientProfile) error
	AssignDoctor(ctx context.Context, patientID string, doctorID primitive.ObjectID) error
	FindByRole(ctx context.Context, role models.Role) ([]models.Account, error)
}

type AccountRepositoryImpl struct {
	collection *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) AccountRepository {
	return &AccountRepositoryImpl{collection: db.Collection(accountCollection)}
}

func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Account, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	var account models.Account
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// Create inserts a new account. Email uniqueness is pre-checked rather than
// relying on an index violation.
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *models.Account) (string, error) {
	err := r.collection.FindOne(ctx, bson.M{"email": account.Email}).Err()
	if err == nil {
		return "", ErrAccountAlreadyExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	now := time.Now().UTC()
	account.ID = primitive.NewObjectID()
	account.CreatedAt = now
	account.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, account); err != nil {
		return "", err
	}
	return account.ID.Hex(), nil
}

func (r *AccountRepositoryImpl) UpdatePatientProfile(ctx context.Context, id string, profile *models.PatientProfile) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrAccountNotFound
	}

	update := bson.M{"$set": bson.M{
		"patient_profile": profile,
		"updated_at":      time.Now().UTC(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepositoryImpl) AssignDoctor(ctx context.Context, patientID string, doctorID primitive.ObjectID) error {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return ErrAccountNotFound
	}

	update := bson.M{"$set": bson.M{
		"patient_profile.assigned_doctor_id": doctorID,
		"updated_at":                         time.Now().UTC(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepositoryImpl) FindByRole(ctx context.Context, role models.Role) ([]models.Account, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	accounts := []models.Account{}
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
