package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/accident-analytics/internal/pkg/utils"
	"github.com/accident-analytics/internal/pkg/validator"
	"github.com/accident-analytics/internal/usecase"
	"github.com/accident-analytics/internal/usecase/dto"
)

// AccidentHandler serves filtered record subsets.
type AccidentHandler struct {
	accidentUC *usecase.AccidentUseCase
	logger     *zap.Logger
}

func NewAccidentHandler(accidentUC *usecase.AccidentUseCase, logger *zap.Logger) *AccidentHandler {
	return &AccidentHandler{
		accidentUC: accidentUC,
		logger:     logger,
	}
}

// Filter godoc
// @Summary Filter accident records
// @Description Applies the given filter criteria and returns the matching records
// @Tags Accidents
// @Accept json
// @Produce json
// @Param request body dto.FilterRequest true "Filter criteria"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/accidents/filter [post]
func (h *AccidentHandler) Filter(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.accidentUC.Filter(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
