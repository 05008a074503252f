// Command importer is the offline batch job that loads the food guideline
// HTML document into the ingredient collection. It replaces the whole
// collection on success and leaves it untouched on any failure.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"ayurcare_backend/internal/config"
	"ayurcare_backend/internal/logger"
	"ayurcare_backend/internal/repositories"
	"ayurcare_backend/internal/services"
	"ayurcare_backend/internal/storage"
)

const runTimeout = 2 * time.Minute

func main() {
	filePath := flag.String("file", "", "path to the guideline HTML document")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: importer -file <path>")
		os.Exit(2)
	}

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	client, err := storage.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		logger.Fatal("Document store unavailable, aborting import", "error", err)
	}
	defer storage.Disconnect(client)

	db := client.Database(cfg.Mongo.Database)
	ingredientRepo := repositories.NewIngredientRepository(db, cfg.Mongo.IngredientCollection)
	importService := services.NewImportService(ingredientRepo)

	report, err := importService.Run(ctx, *filePath)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNothingToImport):
			logger.Fatal("No data was extracted, nothing to import", "file", *filePath)
		case errors.Is(err, fs.ErrNotExist):
			logger.Fatal("Source file not found", "file", *filePath)
		default:
			logger.Fatal("Import failed", "file", *filePath, "error", err)
		}
	}

	logger.Info("Import complete",
		"file", *filePath,
		"parsed", report.Parsed,
		"deleted", report.Deleted,
		"inserted", report.Inserted,
	)
}
