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
	"github.com/accident-analytics/internal/domain/repository"
	"github.com/accident-analytics/internal/pkg/errors"
	"github.com/accident-analytics/internal/usecase/dto"
)

// BlackspotUseCase runs the filter + clustering pipeline and caches computed
// results keyed by a hash of the request.
type BlackspotUseCase struct {
	accidentRepo repository.AccidentRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	cacheTTL     time.Duration
}

func NewBlackspotUseCase(
	accidentRepo repository.AccidentRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *BlackspotUseCase {
	return &BlackspotUseCase{
		accidentRepo: accidentRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
	}
}

// Identify returns the blackspot summaries for the filtered subset, ordered
// by descending risk score.
func (uc *BlackspotUseCase) Identify(ctx context.Context, req dto.BlackspotRequest) (*dto.BlackspotResponse, error) {
	if req.EpsKm <= 0 || req.MinSamples <= 0 {
		return nil, errors.ErrInvalidClusterParams
	}
	if err := validateHourRange(req.FilterRequest); err != nil {
		return nil, err
	}

	cacheKey := blackspotCacheKey(req)
	if uc.cacheRepo != nil {
		if cached, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && cached != nil {
			var resp dto.BlackspotResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				uc.logger.Debug("Blackspot cache hit", zap.String("key", cacheKey))
				return &resp, nil
			}
		}
	}

	records, err := uc.accidentRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load accident records", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	filtered := analytics.Filter(records, req.ToCriteria())

	blackspots, err := analytics.IdentifyBlackspots(filtered, req.EpsKm, req.MinSamples)
	if err != nil {
		uc.logger.Warn("Blackspot clustering rejected parameters", zap.Error(err))
		return nil, errors.ErrInvalidClusterParams
	}

	uc.logger.Info("Blackspot clustering completed",
		zap.Int("filtered_records", len(filtered)),
		zap.Int("blackspots", len(blackspots)),
		zap.Float64("eps_km", req.EpsKm),
		zap.Int("min_samples", req.MinSamples),
	)

	resp := &dto.BlackspotResponse{
		Blackspots: blackspots,
		EpsKm:      req.EpsKm,
		MinSamples: req.MinSamples,
		Filtered:   len(filtered),
	}

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache blackspot result", zap.Error(err))
			}
		}
	}

	return resp, nil
}

// blackspotCacheKey derives a stable key from the full request payload.
func blackspotCacheKey(req dto.BlackspotRequest) string {
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("blackspots:%s", hex.EncodeToString(sum[:16]))
}
