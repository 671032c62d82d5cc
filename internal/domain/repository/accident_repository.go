package repository

import (
	"context"

	"github.com/accident-analytics/internal/domain"
)

// AccidentRepository is the persistence boundary for accident records. The
// analytics pipeline always operates on the full in-memory collection; the
// dataset is bounded (a few years of federal data), so ListAll is the primary
// read path.
type AccidentRepository interface {
	ListAll(ctx context.Context) ([]domain.AccidentRecord, error)
	ReplaceAll(ctx context.Context, records []domain.AccidentRecord) error
	Count(ctx context.Context) (int, error)
	Years(ctx context.Context) ([]int, error)
}
