package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/accident-analytics/internal/analytics"
	"github.com/accident-analytics/internal/domain"
	"github.com/accident-analytics/internal/domain/repository"
	"github.com/accident-analytics/internal/pkg/errors"
	"github.com/accident-analytics/internal/usecase/dto"
)

// StatsUseCase computes summary statistics and risk metrics over filtered
// subsets, with cached results for repeated filter combinations.
type StatsUseCase struct {
	accidentRepo repository.AccidentRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	cacheTTL     time.Duration
}

func NewStatsUseCase(
	accidentRepo repository.AccidentRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		accidentRepo: accidentRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
	}
}

// Summary computes the dashboard summary statistics.
func (uc *StatsUseCase) Summary(ctx context.Context, req dto.FilterRequest) (*dto.SummaryResponse, error) {
	filtered, err := uc.filtered(ctx, req)
	if err != nil {
		return nil, err
	}

	cacheKey := statsCacheKey("summary", req)
	if uc.cacheRepo != nil {
		if cached, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && cached != nil {
			var resp dto.SummaryResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	resp := &dto.SummaryResponse{Summary: analytics.Summarize(filtered)}
	uc.cache(ctx, cacheKey, resp)
	return resp, nil
}

// Risk computes severity-normalized risk metrics.
func (uc *StatsUseCase) Risk(ctx context.Context, req dto.FilterRequest) (*dto.RiskResponse, error) {
	filtered, err := uc.filtered(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := &dto.RiskResponse{Risk: analytics.RiskMetrics(filtered)}
	return resp, nil
}

func (uc *StatsUseCase) filtered(ctx context.Context, req dto.FilterRequest) ([]domain.AccidentRecord, error) {
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

func (uc *StatsUseCase) cache(ctx context.Context, key string, value interface{}) {
	if uc.cacheRepo == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache stats result", zap.String("key", key), zap.Error(err))
	}
}

func statsCacheKey(kind string, req dto.FilterRequest) string {
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("stats:%s:%s", kind, hex.EncodeToString(sum[:16]))
}
