package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain/repository"
	apperrors "github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/errors"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/utils"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/boundary"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/distance"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/interval"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/routing"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/timewindow"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/usecase/dto"
)

// PlanOptions tune the combination search.
type PlanOptions struct {
	// MaxPlaces bounds the candidate list; the optimization is exponential
	// in the worst case and a day plan has no business exceeding this.
	MaxPlaces int
	// MaxParallel bounds concurrently evaluated meal combinations.
	MaxParallel int
	// CacheTTL is how long plan responses stay memoized by request digest.
	CacheTTL time.Duration
}

func DefaultPlanOptions() PlanOptions {
	return PlanOptions{
		MaxPlaces:   25,
		MaxParallel: 4,
		CacheTTL:    time.Hour,
	}
}

// PlanUseCase runs the whole pipeline for one day: effective windows,
// restaurant node expansion, meal-combination enumeration and route
// optimization, selecting the best feasible combination.
type PlanUseCase struct {
	calculator *timewindow.Calculator
	estimator  distance.Estimator
	optimizer  *routing.Optimizer
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	opts       PlanOptions
}

func NewPlanUseCase(
	calculator *timewindow.Calculator,
	estimator distance.Estimator,
	optimizer *routing.Optimizer,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	opts PlanOptions,
) *PlanUseCase {
	if opts.MaxPlaces <= 0 {
		opts.MaxPlaces = DefaultPlanOptions().MaxPlaces
	}
	if opts.MaxParallel <= 0 {
		opts.MaxParallel = DefaultPlanOptions().MaxParallel
	}
	return &PlanUseCase{
		calculator: calculator,
		estimator:  estimator,
		optimizer:  optimizer,
		cacheRepo:  cacheRepo,
		logger:     logger,
		opts:       opts,
	}
}

// BestPlan is the winning combination at domain level, kept for persistence.
type BestPlan struct {
	Result      *domain.RouteResult
	MealChoices map[string]string
}

// combinationOutcome is the evaluation of one meal combination. Exactly one
// of result and reason is set.
type combinationOutcome struct {
	mealChoices map[string]string
	result      *domain.RouteResult
	reason      string
}

// Plan evaluates every meal combination and reports all of them plus the
// best feasible one. A day where every combination is infeasible still
// returns a response, with a null best.
func (uc *PlanUseCase) Plan(ctx context.Context, req *dto.PlanRequest) (*dto.PlanResponse, error) {
	key := requestDigest(req)
	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.Get(ctx, key); err == nil && data != nil {
			var cached dto.PlanResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				uc.logger.Debug("Plan cache hit", zap.String("key", key))
				return &cached, nil
			}
		}
	}

	outcomes, bestIdx, err := uc.evaluateAll(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := buildPlanResponse(outcomes, bestIdx)

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := uc.cacheRepo.Set(ctx, key, data, uc.opts.CacheTTL); err != nil {
				uc.logger.Warn("Failed to cache plan", zap.Error(err))
			}
		}
	}

	return resp, nil
}

// PlanBest returns only the winning combination, failing when no combination
// is feasible. ItineraryUseCase persists its output.
func (uc *PlanUseCase) PlanBest(ctx context.Context, req *dto.PlanRequest) (*BestPlan, error) {
	outcomes, bestIdx, err := uc.evaluateAll(ctx, req)
	if err != nil {
		return nil, err
	}
	if bestIdx < 0 {
		return nil, apperrors.ErrAllCombinationsInfeasible
	}
	return &BestPlan{
		Result:      outcomes[bestIdx].result,
		MealChoices: outcomes[bestIdx].mealChoices,
	}, nil
}

func (uc *PlanUseCase) evaluateAll(ctx context.Context, req *dto.PlanRequest) ([]combinationOutcome, int, error) {
	if len(req.Places) > uc.opts.MaxPlaces {
		return nil, -1, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "too many places", "max": uc.opts.MaxPlaces, "got": len(req.Places),
		})
	}

	places := req.ToDomainPlaces()
	user := req.ToDomainUser()
	day := req.ToDomainDayInfo()

	for i := range places {
		if !utils.ValidateCoordinates(places[i].Lat, places[i].Lon) {
			return nil, -1, apperrors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
				"place_id": places[i].ID, "lat": places[i].Lat, "lon": places[i].Lon,
			})
		}
	}

	windows, err := uc.calculator.CalculateEffectiveWindows(places, user)
	if err != nil {
		return nil, -1, err
	}

	expanded, aligned, err := timewindow.SplitRestaurantNodes(places, windows)
	if err != nil {
		return nil, -1, err
	}

	globalStart, err := utils.TimeToMinutes(user.StartTime)
	if err != nil {
		return nil, -1, apperrors.ErrInvalidClock
	}
	globalEnd, err := utils.TimeToMinutes(user.EndTime)
	if err != nil {
		return nil, -1, apperrors.ErrInvalidClock
	}
	globalWindow, err := interval.Normalize(globalStart, globalEnd)
	if err != nil {
		return nil, -1, apperrors.ErrInvalidInterval
	}

	combinations := enumerateCombinations(expanded, aligned)
	uc.logger.Info("Evaluating meal combinations",
		zap.Int("places", len(expanded)),
		zap.Int("combinations", len(combinations)))

	outcomes := make([]combinationOutcome, len(combinations))

	var wg sync.WaitGroup
	sem := make(chan struct{}, uc.opts.MaxParallel)
	for i := range combinations {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			outcomes[i] = uc.evaluateCombination(
				ctx, expanded, aligned, day,
				globalWindow.Start, globalWindow.End,
				combinations[i],
			)
		}(i)
	}
	wg.Wait()

	bestIdx := -1
	for i := range outcomes {
		if outcomes[i].result == nil {
			continue
		}
		if bestIdx < 0 || outcomes[i].result.Objective < outcomes[bestIdx].result.Objective {
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		uc.logger.Warn("No feasible combination for the day",
			zap.Int("combinations", len(combinations)))
	}

	return outcomes, bestIdx, nil
}

// evaluateCombination runs anchors, distance matrix and the optimizer over
// the active subset: all non-restaurant places plus the combination's chosen
// restaurant nodes. Anchor rules are re-resolved per combination because the
// active index space changes with the selection.
func (uc *PlanUseCase) evaluateCombination(
	ctx context.Context,
	expanded []domain.Place,
	aligned []domain.Window,
	day domain.DayInfo,
	globalStart, globalEnd int,
	selection []int,
) combinationOutcome {
	selected := make(map[int]bool, len(selection))
	for _, idx := range selection {
		selected[idx] = true
	}

	var active []domain.Place
	var activeWindows []domain.Window
	mealChoices := make(map[string]string)

	for i := range expanded {
		if expanded[i].IsRestaurant() && !selected[i] {
			continue
		}
		if expanded[i].IsRestaurant() {
			mealChoices[aligned[i].Meal] = expanded[i].ID
		}
		active = append(active, expanded[i])
		activeWindows = append(activeWindows, aligned[i])
	}

	anchors, err := boundary.Resolve(active, day)
	if err != nil {
		uc.logger.Debug("Combination rejected by boundary rules", zap.Error(err))
		return combinationOutcome{mealChoices: mealChoices, reason: err.Error()}
	}

	result, err := uc.optimizer.Solve(ctx, routing.Input{
		Places:      active,
		Windows:     activeWindows,
		Anchors:     anchors,
		GlobalStart: globalStart,
		GlobalEnd:   globalEnd,
		Matrix:      uc.estimator.BuildMatrix(active),
	})
	if err != nil {
		if errors.Is(err, routing.ErrInfeasible) {
			return combinationOutcome{mealChoices: mealChoices, reason: "no feasible route within budget"}
		}
		return combinationOutcome{mealChoices: mealChoices, reason: err.Error()}
	}

	return combinationOutcome{mealChoices: mealChoices, result: result}
}

// enumerateCombinations groups restaurant nodes by meal label and forms the
// Cartesian product choosing exactly one node per meal. Without restaurants
// there is a single empty combination.
func enumerateCombinations(expanded []domain.Place, aligned []domain.Window) [][]int {
	groups := make(map[string][]int)
	for i := range expanded {
		if expanded[i].IsRestaurant() && aligned[i].Meal != "" {
			groups[aligned[i].Meal] = append(groups[aligned[i].Meal], i)
		}
	}

	meals := make([]string, 0, len(groups))
	for meal := range groups {
		meals = append(meals, meal)
	}
	sort.Strings(meals)

	combinations := [][]int{{}}
	for _, meal := range meals {
		var next [][]int
		for _, combo := range combinations {
			for _, idx := range groups[meal] {
				extended := make([]int, len(combo), len(combo)+1)
				copy(extended, combo)
				next = append(next, append(extended, idx))
			}
		}
		combinations = next
	}
	return combinations
}

func buildPlanResponse(outcomes []combinationOutcome, bestIdx int) *dto.PlanResponse {
	resp := &dto.PlanResponse{
		Combinations: make([]dto.CombinationResponse, 0, len(outcomes)),
	}

	for i := range outcomes {
		combo := dto.CombinationResponse{
			MealChoices: outcomes[i].mealChoices,
			Reason:      outcomes[i].reason,
		}
		if outcomes[i].result != nil {
			objective := outcomes[i].result.Objective
			combo.Objective = &objective
			combo.Route = dto.ConvertRouteResult(outcomes[i].result)
		}
		resp.Combinations = append(resp.Combinations, combo)

		if i == bestIdx {
			best := combo
			resp.Best = &best
		}
	}

	return resp
}

func requestDigest(req *dto.PlanRequest) string {
	data, err := json.Marshal(req)
	if err != nil {
		return "plan:unhashable"
	}
	sum := sha256.Sum256(data)
	return "plan:" + hex.EncodeToString(sum[:])
}
