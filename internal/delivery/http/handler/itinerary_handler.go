package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/utils"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/validator"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/usecase"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/usecase/dto"
)

// ItineraryHandler serves persisted day plans.
type ItineraryHandler struct {
	itineraryUC *usecase.ItineraryUseCase
	logger      *zap.Logger
}

func NewItineraryHandler(itineraryUC *usecase.ItineraryUseCase, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUC: itineraryUC,
		logger:      logger,
	}
}

// Create godoc
// @Summary Plan a day and persist the winning route
// @Description Runs the same optimization as /plan but stores the best combination's route. Fails with 422 when no meal combination yields a feasible route.
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body dto.PlanRequest true "Places, traveler window and day descriptor"
// @Success 200 {object} utils.SuccessResponse{data=dto.ItineraryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/itineraries [post]
func (h *ItineraryHandler) Create(c *fiber.Ctx) error {
	var req dto.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.itineraryUC.PlanAndSave(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetByID godoc
// @Summary Get a stored itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary UUID"
// @Success 200 {object} utils.SuccessResponse{data=dto.ItineraryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/itineraries/{id} [get]
func (h *ItineraryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	result, err := h.itineraryUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// List godoc
// @Summary List stored itineraries
// @Tags Itineraries
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} utils.SuccessResponse{data=dto.ItineraryListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/itineraries [get]
func (h *ItineraryHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	result, err := h.itineraryUC.List(c.Context(), limit, offset)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
