package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/accident-analytics/internal/config"
	"github.com/accident-analytics/internal/pkg/logger"
	"github.com/accident-analytics/internal/repository/geojson"
	"github.com/accident-analytics/internal/repository/postgres"
)

// Ingest CLI: loads the federal accident GeoJSON dataset (from a local file
// or the open data portal), trims it to the configured trailing years and
// replaces the accidents table with the result.
func main() {
	filePath := flag.String("file", "", "path to a local GeoJSON dataset (overrides DATASET_FILE_PATH)")
	sourceURL := flag.String("url", "", "dataset download URL (overrides DATASET_SOURCE_URL)")
	keepYears := flag.Int("years", 0, "trailing years to keep (overrides DATASET_KEEP_YEARS)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if *filePath != "" {
		cfg.Dataset.FilePath = *filePath
	}
	if *sourceURL != "" {
		cfg.Dataset.SourceURL = *sourceURL
	}
	if *keepYears > 0 {
		cfg.Dataset.KeepYears = *keepYears
	}

	log.Info("Starting dataset ingest",
		zap.String("file", cfg.Dataset.FilePath),
		zap.String("url", cfg.Dataset.SourceURL),
		zap.Int("keep_years", cfg.Dataset.KeepYears),
	)

	data, err := loadDataset(cfg, log)
	if err != nil {
		log.Fatal("Failed to load dataset", zap.Error(err))
	}

	loader := geojson.NewLoader(log)
	records, err := loader.Parse(data)
	if err != nil {
		log.Fatal("Failed to parse dataset", zap.Error(err))
	}
	records = loader.TrimYears(records, cfg.Dataset.KeepYears)

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	repo := postgres.NewAccidentRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := repo.ReplaceAll(ctx, records); err != nil {
		log.Fatal("Failed to store records", zap.Error(err))
	}

	count, err := repo.Count(ctx)
	if err != nil {
		log.Fatal("Failed to verify record count", zap.Error(err))
	}
	years, err := repo.Years(ctx)
	if err != nil {
		log.Fatal("Failed to read stored years", zap.Error(err))
	}

	log.Info("Ingest complete",
		zap.Int("records", count),
		zap.Ints("years", years),
	)
}

// loadDataset prefers the local file when present, otherwise downloads from
// the configured source URL.
func loadDataset(cfg *config.Config, log *zap.Logger) ([]byte, error) {
	if cfg.Dataset.FilePath != "" {
		if data, err := os.ReadFile(cfg.Dataset.FilePath); err == nil {
			log.Info("Dataset read from file", zap.String("path", cfg.Dataset.FilePath), zap.Int("bytes", len(data)))
			return data, nil
		} else if cfg.Dataset.SourceURL == "" {
			return nil, fmt.Errorf("read dataset file: %w", err)
		}
	}

	if cfg.Dataset.SourceURL == "" {
		return nil, fmt.Errorf("no dataset file or source URL configured")
	}

	log.Info("Downloading dataset", zap.String("url", cfg.Dataset.SourceURL))

	client := &http.Client{Timeout: 10 * time.Minute}
	resp, err := client.Get(cfg.Dataset.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("download dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download dataset: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dataset body: %w", err)
	}

	log.Info("Dataset downloaded", zap.Int("bytes", len(data)))
	return data, nil
}
