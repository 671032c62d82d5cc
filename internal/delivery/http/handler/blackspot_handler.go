package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/accident-analytics/internal/pkg/utils"
	"github.com/accident-analytics/internal/pkg/validator"
	"github.com/accident-analytics/internal/usecase"
	"github.com/accident-analytics/internal/usecase/dto"
)

// BlackspotHandler serves the blackspot clustering endpoint.
type BlackspotHandler struct {
	blackspotUC *usecase.BlackspotUseCase
	logger      *zap.Logger
}

func NewBlackspotHandler(blackspotUC *usecase.BlackspotUseCase, logger *zap.Logger) *BlackspotHandler {
	return &BlackspotHandler{
		blackspotUC: blackspotUC,
		logger:      logger,
	}
}

// Identify godoc
// @Summary Identify accident blackspots
// @Description Clusters the filtered records with DBSCAN and returns per-cluster risk summaries ordered by descending risk score
// @Tags Blackspots
// @Accept json
// @Produce json
// @Param request body dto.BlackspotRequest true "Filter criteria and clustering parameters"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/blackspots [post]
func (h *BlackspotHandler) Identify(c *fiber.Ctx) error {
	var req dto.BlackspotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.blackspotUC.Identify(c.Context(), req)
	if err != nil {
		h.logger.Error("Blackspot identification failed", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    len(result.Blackspots),
		Filtered: result.Filtered,
	})
}
