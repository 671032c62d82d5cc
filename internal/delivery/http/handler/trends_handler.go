package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/accident-analytics/internal/pkg/utils"
	"github.com/accident-analytics/internal/pkg/validator"
	"github.com/accident-analytics/internal/usecase"
	"github.com/accident-analytics/internal/usecase/dto"
)

// TrendsHandler serves temporal, seasonal and trend analyses.
type TrendsHandler struct {
	trendsUC *usecase.TrendsUseCase
	logger   *zap.Logger
}

func NewTrendsHandler(trendsUC *usecase.TrendsUseCase, logger *zap.Logger) *TrendsHandler {
	return &TrendsHandler{
		trendsUC: trendsUC,
		logger:   logger,
	}
}

// Temporal godoc
// @Summary Temporal distributions
// @Tags Trends
// @Accept json
// @Produce json
// @Param request body dto.FilterRequest true "Filter criteria"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/trends/temporal [post]
func (h *TrendsHandler) Temporal(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.trendsUC.Temporal(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Seasonal godoc
// @Summary Seasonal accident patterns
// @Tags Trends
// @Accept json
// @Produce json
// @Param request body dto.FilterRequest true "Filter criteria"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/trends/seasonal [post]
func (h *TrendsHandler) Seasonal(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.trendsUC.Seasonal(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Yearly godoc
// @Summary Year-over-year trends
// @Tags Trends
// @Accept json
// @Produce json
// @Param request body dto.FilterRequest true "Filter criteria"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/trends/yearly [post]
func (h *TrendsHandler) Yearly(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.trendsUC.Yearly(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Monthly godoc
// @Summary Monthly sparkline series
// @Description Year-month counts for a metric (total, fatal, bicycle, pedestrian) with current/previous delta
// @Tags Trends
// @Accept json
// @Produce json
// @Param request body dto.MonthlyTrendRequest true "Filter criteria and metric"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/trends/monthly [post]
func (h *TrendsHandler) Monthly(c *fiber.Ctx) error {
	var req dto.MonthlyTrendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.trendsUC.Monthly(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
