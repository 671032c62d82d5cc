package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/accident-analytics/internal/pkg/utils"
	"github.com/accident-analytics/internal/pkg/validator"
	"github.com/accident-analytics/internal/usecase"
	"github.com/accident-analytics/internal/usecase/dto"
)

// StatsHandler serves summary statistics and risk metrics.
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// Summary godoc
// @Summary Summary statistics
// @Description Aggregated statistics over the filtered subset
// @Tags Statistics
// @Accept json
// @Produce json
// @Param request body dto.FilterRequest true "Filter criteria"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/stats/summary [post]
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.statsUC.Summary(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Risk godoc
// @Summary Risk metrics
// @Description Severity-normalized risk rates by road type, hour and bicycle involvement
// @Tags Statistics
// @Accept json
// @Produce json
// @Param request body dto.FilterRequest true "Filter criteria"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/stats/risk [post]
func (h *StatsHandler) Risk(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.statsUC.Risk(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
