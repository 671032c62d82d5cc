package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/accident-analytics/internal/analytics"
	"github.com/accident-analytics/internal/domain"
	"github.com/accident-analytics/internal/domain/repository"
	"github.com/accident-analytics/internal/pkg/errors"
	"github.com/accident-analytics/internal/usecase/dto"
)

// TrendsUseCase serves the temporal, seasonal and trend analyses.
type TrendsUseCase struct {
	accidentRepo repository.AccidentRepository
	logger       *zap.Logger
}

func NewTrendsUseCase(accidentRepo repository.AccidentRepository, logger *zap.Logger) *TrendsUseCase {
	return &TrendsUseCase{
		accidentRepo: accidentRepo,
		logger:       logger,
	}
}

func (uc *TrendsUseCase) Temporal(ctx context.Context, req dto.FilterRequest) (*dto.TemporalResponse, error) {
	filtered, err := uc.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	return &dto.TemporalResponse{Temporal: analytics.Temporal(filtered)}, nil
}

func (uc *TrendsUseCase) Seasonal(ctx context.Context, req dto.FilterRequest) (*dto.SeasonalResponse, error) {
	filtered, err := uc.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	return &dto.SeasonalResponse{Seasonal: analytics.Seasonal(filtered)}, nil
}

func (uc *TrendsUseCase) Yearly(ctx context.Context, req dto.FilterRequest) (*dto.YearlyResponse, error) {
	filtered, err := uc.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	return &dto.YearlyResponse{Trends: analytics.YearOverYear(filtered)}, nil
}

// Monthly returns the sparkline series for the requested metric; the metric
// defaults to "total".
func (uc *TrendsUseCase) Monthly(ctx context.Context, req dto.MonthlyTrendRequest) (*dto.MonthlyTrendResponse, error) {
	metric := analytics.TrendMetric(req.Metric)
	switch metric {
	case "":
		metric = analytics.MetricTotal
	case analytics.MetricTotal, analytics.MetricFatal, analytics.MetricBicycle, analytics.MetricPedestrian:
	default:
		return nil, errors.ErrInvalidMetric
	}

	filtered, err := uc.filtered(ctx, req.FilterRequest)
	if err != nil {
		return nil, err
	}

	return &dto.MonthlyTrendResponse{
		Metric: string(metric),
		Trend:  analytics.MonthlySeries(filtered, metric),
	}, nil
}

func (uc *TrendsUseCase) filtered(ctx context.Context, req dto.FilterRequest) ([]domain.AccidentRecord, error) {
	if err := validateHourRange(req); err != nil {
		return nil, err
	}

	records, err := uc.accidentRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load accident records", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return analytics.Filter(records, req.ToCriteria()), nil
}
