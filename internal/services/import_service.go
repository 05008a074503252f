package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"ayurcare_backend/internal/importer"
	"ayurcare_backend/internal/logger"
	"ayurcare_backend/internal/repositories"
)

// ErrNothingToImport is returned when the parsed document yields zero
// ingredient records. The existing collection is left untouched.
var ErrNothingToImport = errors.New("no ingredient records extracted, nothing to import")

// ImportReport summarizes a completed import run.
type ImportReport struct {
	Parsed   int
	Deleted  int64
	Inserted int64
}

type ImportService interface {
	Run(ctx context.Context, filePath string) (*ImportReport, error)
}

type ImportServiceImpl struct {
	ingredientRepo repositories.IngredientRepository
}

func NewImportService(ingredientRepo repositories.IngredientRepository) ImportService {
	return &ImportServiceImpl{ingredientRepo: ingredientRepo}
}

// Run parses the guideline document at filePath and replaces the ingredient
// collection with the extracted records. An unreadable file or an empty
// extraction aborts the run before any store mutation; the delete-then-
// insert replace itself is not transactional.
func (s *ImportServiceImpl) Run(ctx context.Context, filePath string) (*ImportReport, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading source file: %w", err)
	}
	defer f.Close()

	records, err := importer.ParseGuidelines(f)
	if err != nil {
		return nil, fmt.Errorf("parsing source file: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNothingToImport
	}

	logger.CtxInfo(ctx, "replacing ingredient collection", "records", len(records))

	deleted, inserted, err := s.ingredientRepo.ReplaceAll(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("replacing ingredient collection: %w", err)
	}

	return &ImportReport{
		Parsed:   len(records),
		Deleted:  deleted,
		Inserted: inserted,
	}, nil
}
