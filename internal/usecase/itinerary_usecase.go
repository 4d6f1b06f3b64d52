package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain/repository"
	apperrors "github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/errors"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/usecase/dto"
)

// ItineraryUseCase persists winning day plans and serves them back.
type ItineraryUseCase struct {
	planUC *PlanUseCase
	repo   repository.ItineraryRepository
	logger *zap.Logger
}

func NewItineraryUseCase(planUC *PlanUseCase, repo repository.ItineraryRepository, logger *zap.Logger) *ItineraryUseCase {
	return &ItineraryUseCase{planUC: planUC, repo: repo, logger: logger}
}

// PlanAndSave runs the combination search and stores the best route. Unlike
// Plan, a day with no feasible combination is an error here: there is nothing
// to persist.
func (uc *ItineraryUseCase) PlanAndSave(ctx context.Context, req *dto.PlanRequest) (*dto.ItineraryResponse, error) {
	best, err := uc.planUC.PlanBest(ctx, req)
	if err != nil {
		return nil, err
	}

	itinerary := &domain.Itinerary{
		ID:          uuid.New().String(),
		Date:        req.DayInfo.Date,
		Objective:   best.Result.Objective,
		MealChoices: formatMealChoices(best.MealChoices),
		Visits:      best.Result.Visits,
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.repo.Save(ctx, itinerary); err != nil {
		uc.logger.Error("Failed to save itinerary", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	uc.logger.Info("Itinerary saved",
		zap.String("id", itinerary.ID),
		zap.Int64("objective", itinerary.Objective),
		zap.Int("visits", len(itinerary.Visits)))

	resp := dto.ConvertItinerary(itinerary)
	return &resp, nil
}

func (uc *ItineraryUseCase) GetByID(ctx context.Context, id string) (*dto.ItineraryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrInvalidItineraryID
	}

	itinerary, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertItinerary(itinerary)
	return &resp, nil
}

func (uc *ItineraryUseCase) List(ctx context.Context, limit, offset int) (*dto.ItineraryListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	itineraries, total, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &dto.ItineraryListResponse{
		Itineraries: make([]dto.ItineraryResponse, 0, len(itineraries)),
		Total:       total,
	}
	for i := range itineraries {
		resp.Itineraries = append(resp.Itineraries, dto.ConvertItinerary(&itineraries[i]))
	}
	return resp, nil
}

// formatMealChoices flattens the meal -> restaurant node mapping into stable
// "meal:node" strings, ordered by meal name.
func formatMealChoices(choices map[string]string) []string {
	meals := make([]string, 0, len(choices))
	for meal := range choices {
		meals = append(meals, meal)
	}
	sort.Strings(meals)

	out := make([]string, 0, len(meals))
	for _, meal := range meals {
		out = append(out, meal+":"+choices[meal])
	}
	return out
}
