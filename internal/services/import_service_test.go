package services

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayurcare_backend/internal/models"
)

const importTestDoc = `<html><body>
<div class="row">
  <h2 class="center">Fruits</h2>
  <div class="table-content">
    <div class="column large-4">
      <h3>Vata</h3>
      <div><h4>Avoid</h4>Cranberries<br>Apricots</div>
      <div><h4>Favor</h4>Bananas<br>Berries</div>
    </div>
  </div>
</div>
</body></html>`

func writeImportDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guidelines.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportService_Run(t *testing.T) {
	t.Parallel()

	repo := &fakeIngredientRepo{deleted: 2}
	service := NewImportService(repo)

	report, err := service.Run(context.Background(), writeImportDoc(t, importTestDoc))
	require.NoError(t, err)

	assert.Equal(t, 1, repo.replaceCalls)
	assert.Equal(t, report.Parsed, len(repo.stored))
	assert.Equal(t, int64(2), report.Deleted)
	assert.Equal(t, int64(report.Parsed), report.Inserted)

	names := make([]string, 0, len(repo.stored))
	for _, ing := range repo.stored {
		names = append(names, ing.Name)
		assert.Equal(t, "Fruits", ing.Category)
	}
	assert.Contains(t, names, "Cranberry")
	assert.Contains(t, names, "Banana")
	assert.Contains(t, names, "Berry")
}

func TestImportService_Run_EmptyDocument(t *testing.T) {
	t.Parallel()

	repo := &fakeIngredientRepo{}
	service := NewImportService(repo)

	report, err := service.Run(context.Background(), writeImportDoc(t, "<html><body><p>nothing here</p></body></html>"))
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrNothingToImport)
	assert.Zero(t, repo.replaceCalls, "an empty extraction must not touch the store")
}

func TestImportService_Run_MissingFile(t *testing.T) {
	t.Parallel()

	service := NewImportService(&fakeIngredientRepo{})

	report, err := service.Run(context.Background(), filepath.Join(t.TempDir(), "does-not-exist.html"))
	assert.Nil(t, report)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestImportService_Run_PreservesDoshaEntries(t *testing.T) {
	t.Parallel()

	repo := &fakeIngredientRepo{}
	service := NewImportService(repo)

	_, err := service.Run(context.Background(), writeImportDoc(t, importTestDoc))
	require.NoError(t, err)

	var banana *models.Ingredient
	for i := range repo.stored {
		if repo.stored[i].Name == "Banana" {
			banana = &repo.stored[i]
		}
	}
	require.NotNil(t, banana)
	require.Len(t, banana.DoshaInfo[models.DoshaVata], 1)
	assert.Equal(t, models.StatusFavor, banana.DoshaInfo[models.DoshaVata][0].Status)
}
