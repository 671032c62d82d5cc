package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/accident-analytics/internal/analytics"
	"github.com/accident-analytics/internal/domain/repository"
	"github.com/accident-analytics/internal/pkg/errors"
	"github.com/accident-analytics/internal/usecase/dto"
)

// AccidentUseCase serves filtered record subsets to map/table consumers.
type AccidentUseCase struct {
	accidentRepo repository.AccidentRepository
	logger       *zap.Logger
}

func NewAccidentUseCase(accidentRepo repository.AccidentRepository, logger *zap.Logger) *AccidentUseCase {
	return &AccidentUseCase{
		accidentRepo: accidentRepo,
		logger:       logger,
	}
}

// Filter loads the full record set and applies the request criteria.
func (uc *AccidentUseCase) Filter(ctx context.Context, req dto.FilterRequest) (*dto.FilterResponse, error) {
	if err := validateHourRange(req); err != nil {
		return nil, err
	}

	records, err := uc.accidentRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load accident records", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	filtered := analytics.Filter(records, req.ToCriteria())

	uc.logger.Debug("Filter applied",
		zap.Int("total", len(records)),
		zap.Int("filtered", len(filtered)),
	)

	return &dto.FilterResponse{
		Records: filtered,
		Total:   len(filtered),
	}, nil
}

func validateHourRange(req dto.FilterRequest) error {
	if req.HourFrom != nil && req.HourTo != nil && *req.HourFrom > *req.HourTo {
		return errors.ErrInvalidHourRange
	}
	return nil
}
