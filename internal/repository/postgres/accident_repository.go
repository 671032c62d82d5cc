package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/accident-analytics/internal/domain"
	"github.com/accident-analytics/internal/domain/repository"
)

// insertBatchSize keeps each named INSERT well under the postgres parameter
// limit (65535 / 14 columns).
const insertBatchSize = 2000

type accidentRepository struct {
	db *DB
}

func NewAccidentRepository(db *DB) repository.AccidentRepository {
	return &accidentRepository{db: db}
}

func (r *accidentRepository) ListAll(ctx context.Context) ([]domain.AccidentRecord, error) {
	query := `
		SELECT uid, latitude, longitude, severity, accident_type, road_type,
		       canton, year, month, hour, weekday,
		       involves_pedestrian, involves_bicycle, involves_motorcycle
		FROM accidents
		ORDER BY uid`

	records := []domain.AccidentRecord{}
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		r.db.logger.Error("Failed to list accidents", zap.Error(err))
		return nil, fmt.Errorf("list accidents: %w", err)
	}

	return records, nil
}

func (r *accidentRepository) ReplaceAll(ctx context.Context, records []domain.AccidentRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `TRUNCATE TABLE accidents`); err != nil {
		return fmt.Errorf("truncate accidents: %w", err)
	}

	query := `
		INSERT INTO accidents (
			uid, latitude, longitude, severity, accident_type, road_type,
			canton, year, month, hour, weekday,
			involves_pedestrian, involves_bicycle, involves_motorcycle
		) VALUES (
			:uid, :latitude, :longitude, :severity, :accident_type, :road_type,
			:canton, :year, :month, :hour, :weekday,
			:involves_pedestrian, :involves_bicycle, :involves_motorcycle
		)`

	for start := 0; start < len(records); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(records) {
			end = len(records)
		}
		if _, err := tx.NamedExecContext(ctx, query, records[start:end]); err != nil {
			return fmt.Errorf("insert accidents batch: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit accidents: %w", err)
	}

	r.db.logger.Info("Accident records replaced", zap.Int("count", len(records)))
	return nil
}

func (r *accidentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM accidents`); err != nil {
		return 0, fmt.Errorf("count accidents: %w", err)
	}
	return count, nil
}

func (r *accidentRepository) Years(ctx context.Context) ([]int, error) {
	years := []int{}
	query := `SELECT DISTINCT year FROM accidents ORDER BY year`
	if err := r.db.SelectContext(ctx, &years, query); err != nil {
		return nil, fmt.Errorf("list accident years: %w", err)
	}
	return years, nil
}
