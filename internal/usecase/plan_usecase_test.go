package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain/repository"
	apperrors "github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/errors"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/distance"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/routing"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/timewindow"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/usecase"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/usecase/dto"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func newPlanUseCase(cache *MockCacheRepository) *usecase.PlanUseCase {
	logger := zap.NewNop()
	opts := routing.DefaultOptions()
	opts.TimeBudget = 2 * time.Second

	var repo repository.CacheRepository
	if cache != nil {
		repo = cache
	}

	return usecase.NewPlanUseCase(
		timewindow.NewCalculator(logger),
		distance.NewHaversineEstimator(),
		routing.NewOptimizer(opts, logger),
		repo,
		logger,
		usecase.DefaultPlanOptions(),
	)
}

func dayTripRequest() *dto.PlanRequest {
	return &dto.PlanRequest{
		Places: []dto.PlaceRequest{
			{ID: "station_in", Name: "Sants", Category: "transport",
				Lat: 41.40, Lon: 2.17, OpenTime: "08:00", CloseTime: "22:00"},
			{ID: "r1", Name: "Bistro Near", Category: "restaurant",
				Lat: 41.40, Lon: 2.17, OpenTime: "11:00", CloseTime: "15:00", ServiceTime: 60},
			{ID: "r2", Name: "Bistro Far", Category: "restaurant",
				Lat: 42.00, Lon: 3.00, OpenTime: "11:00", CloseTime: "15:00", ServiceTime: 60},
			{ID: "station_out", Name: "Sants", Category: "transport",
				Lat: 41.40, Lon: 2.17, OpenTime: "08:00", CloseTime: "22:00"},
		},
		User: dto.UserRequest{
			StartTime: "08:00",
			EndTime:   "22:00",
			MealTimePreferences: map[string][]string{
				"lunch": {"12:00", "14:00"},
			},
		},
		DayInfo: dto.DayInfoRequest{IsFirstDay: true, IsLastDay: true},
	}
}

func TestPlanUseCase_Plan(t *testing.T) {
	ctx := context.Background()

	t.Run("picks the cheapest lunch candidate", func(t *testing.T) {
		uc := newPlanUseCase(nil)

		resp, err := uc.Plan(ctx, dayTripRequest())
		require.NoError(t, err)
		require.Len(t, resp.Combinations, 2)

		// Combination 0 chooses the near bistro and wins; the far one cannot
		// be reached inside its lunch window.
		require.NotNil(t, resp.Best)
		assert.Equal(t, "r1", resp.Best.MealChoices["lunch"])
		require.NotNil(t, resp.Best.Objective)

		near := resp.Combinations[0]
		require.NotNil(t, near.Objective)
		assert.Len(t, near.Route, 3)

		far := resp.Combinations[1]
		assert.Equal(t, "r2", far.MealChoices["lunch"])
		assert.Nil(t, far.Objective)
		assert.NotEmpty(t, far.Reason)
	})

	t.Run("all combinations infeasible still returns a response", func(t *testing.T) {
		uc := newPlanUseCase(nil)

		// Day trip with no second transport hub: every combination fails the
		// boundary rules.
		req := dayTripRequest()
		req.Places = req.Places[:3]

		resp, err := uc.Plan(ctx, req)
		require.NoError(t, err)
		assert.Nil(t, resp.Best)
		require.Len(t, resp.Combinations, 2)
		for _, combo := range resp.Combinations {
			assert.Nil(t, combo.Objective)
			assert.NotEmpty(t, combo.Reason)
		}
	})

	t.Run("rejects oversized requests", func(t *testing.T) {
		uc := newPlanUseCase(nil)

		req := dayTripRequest()
		for i := 0; i < 30; i++ {
			req.Places = append(req.Places, dto.PlaceRequest{
				ID: "extra", Name: "Extra", Category: "landmark",
				Lat: 41.4, Lon: 2.17, OpenTime: "08:00", CloseTime: "22:00",
			})
		}

		_, err := uc.Plan(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		uc := newPlanUseCase(nil)

		req := dayTripRequest()
		req.Places[1].Lat = 95.0

		_, err := uc.Plan(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
	})

	t.Run("tolerates a failing cache", func(t *testing.T) {
		cache := &MockCacheRepository{}
		cache.On("Get", mock.Anything, mock.Anything).Return(nil, apperrors.ErrCacheError)
		cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrCacheError)

		uc := newPlanUseCase(cache)

		resp, err := uc.Plan(ctx, dayTripRequest())
		require.NoError(t, err)
		require.NotNil(t, resp.Best)
	})

	t.Run("caches the computed response", func(t *testing.T) {
		cache := &MockCacheRepository{}
		cache.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
		cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		uc := newPlanUseCase(cache)

		_, err := uc.Plan(ctx, dayTripRequest())
		require.NoError(t, err)

		cache.AssertCalled(t, "Get", mock.Anything, mock.Anything)
		cache.AssertCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("serves a cache hit without re-solving", func(t *testing.T) {
		cached := &dto.PlanResponse{Combinations: []dto.CombinationResponse{}}
		data, err := json.Marshal(cached)
		require.NoError(t, err)

		cache := &MockCacheRepository{}
		cache.On("Get", mock.Anything, mock.Anything).Return(data, nil)

		uc := newPlanUseCase(cache)

		resp, err := uc.Plan(ctx, dayTripRequest())
		require.NoError(t, err)
		assert.Empty(t, resp.Combinations)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPlanUseCase_PlanBest(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the winning combination", func(t *testing.T) {
		uc := newPlanUseCase(nil)

		best, err := uc.PlanBest(ctx, dayTripRequest())
		require.NoError(t, err)
		assert.Equal(t, "r1", best.MealChoices["lunch"])
		assert.Len(t, best.Result.Visits, 3)
	})

	t.Run("fails when nothing is feasible", func(t *testing.T) {
		uc := newPlanUseCase(nil)

		req := dayTripRequest()
		req.Places = req.Places[:3]

		_, err := uc.PlanBest(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrAllCombinationsInfeasible)
	})
}
