package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/utils"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/validator"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/usecase"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/usecase/dto"
)

// PlanHandler serves day-plan optimization requests.
type PlanHandler struct {
	planUC *usecase.PlanUseCase
	logger *zap.Logger
}

func NewPlanHandler(planUC *usecase.PlanUseCase, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		planUC: planUC,
		logger: logger,
	}
}

// Plan godoc
// @Summary Optimize a single-day itinerary
// @Description Computes effective visit windows for every place, expands restaurants into per-meal candidates, then evaluates every meal combination and returns the best feasible route along with every combination's outcome. A day where no combination is feasible still returns 200 with a null best.
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body dto.PlanRequest true "Places, traveler window and day descriptor"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/plan [post]
func (h *PlanHandler) Plan(c *fiber.Ctx) error {
	var req dto.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.planUC.Plan(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Combinations),
	})
}
