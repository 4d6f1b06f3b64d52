package timewindow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain"
	apperrors "github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/errors"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/interval"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/timewindow"
)

func testUser() *domain.User {
	return &domain.User{
		StartTime: "08:00",
		EndTime:   "22:00",
		MealTimePreferences: map[string][]string{
			"breakfast": {"08:00", "10:00"},
			"lunch":     {"12:00", "14:00"},
			"dinner":    {"19:00", "21:00"},
		},
	}
}

func TestComputeMealIntervals(t *testing.T) {
	calc := timewindow.NewCalculator(zap.NewNop())

	t.Run("widened by 30 minutes and clipped to the activity window", func(t *testing.T) {
		got, err := calc.ComputeMealIntervals(testUser().MealTimePreferences, 480, 1320)
		assert.NoError(t, err)

		// breakfast 08:00-10:00 widens to 07:30-10:30 but clips at 08:00
		assert.Equal(t, interval.Interval{Start: 480, End: 630}, got["breakfast"])
		// lunch 12:00-14:00 widens freely
		assert.Equal(t, interval.Interval{Start: 690, End: 870}, got["lunch"])
		// dinner 19:00-21:00 widens to 18:30-21:30
		assert.Equal(t, interval.Interval{Start: 1110, End: 1290}, got["dinner"])
	})

	t.Run("preferences outside the activity window are dropped", func(t *testing.T) {
		got, err := calc.ComputeMealIntervals(map[string][]string{
			"dinner": {"19:00", "21:00"},
		}, 480, 720)
		assert.NoError(t, err)
		assert.NotContains(t, got, "dinner")
	})

	t.Run("non-pair preferences are skipped", func(t *testing.T) {
		got, err := calc.ComputeMealIntervals(map[string][]string{
			"lunch": {"12:00"},
		}, 480, 1320)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unparseable clock fails", func(t *testing.T) {
		_, err := calc.ComputeMealIntervals(map[string][]string{
			"lunch": {"noon", "14:00"},
		}, 480, 1320)
		assert.ErrorIs(t, err, apperrors.ErrInvalidClock)
	})
}

func TestComputeOperationalSegments(t *testing.T) {
	calc := timewindow.NewCalculator(zap.NewNop())

	t.Run("break splits the window", func(t *testing.T) {
		place := &domain.Place{
			ID:        "p1",
			OpenTime:  "09:00",
			CloseTime: "20:00",
			BreakTime: []string{"13:00", "15:00"},
		}
		segments, err := calc.ComputeOperationalSegments(place, 480, 1320)
		assert.NoError(t, err)
		assert.Equal(t, []interval.Interval{
			{Start: 540, End: 780},
			{Start: 900, End: 1200},
		}, segments)
	})

	t.Run("odd break list is ignored whole", func(t *testing.T) {
		place := &domain.Place{
			ID:        "p1",
			OpenTime:  "09:00",
			CloseTime: "20:00",
			BreakTime: []string{"13:00", "15:00", "17:00"},
		}
		segments, err := calc.ComputeOperationalSegments(place, 480, 1320)
		assert.NoError(t, err)
		assert.Equal(t, []interval.Interval{{Start: 540, End: 1200}}, segments)
	})

	t.Run("unparseable break pair is skipped", func(t *testing.T) {
		place := &domain.Place{
			ID:        "p1",
			OpenTime:  "09:00",
			CloseTime: "20:00",
			BreakTime: []string{"bad", "15:00", "16:00", "17:00"},
		}
		segments, err := calc.ComputeOperationalSegments(place, 480, 1320)
		assert.NoError(t, err)
		assert.Equal(t, []interval.Interval{
			{Start: 540, End: 960},
			{Start: 1020, End: 1200},
		}, segments)
	})

	t.Run("window fully outside activity window fails", func(t *testing.T) {
		place := &domain.Place{
			ID:        "p1",
			OpenTime:  "02:00",
			CloseTime: "04:00",
		}
		_, err := calc.ComputeOperationalSegments(place, 480, 1320)
		assert.ErrorIs(t, err, apperrors.ErrMissingWindow)
	})

	t.Run("breaks covering the whole window fail", func(t *testing.T) {
		place := &domain.Place{
			ID:        "p1",
			OpenTime:  "10:00",
			CloseTime: "12:00",
			BreakTime: []string{"09:00", "13:00"},
		}
		_, err := calc.ComputeOperationalSegments(place, 480, 1320)
		assert.ErrorIs(t, err, apperrors.ErrMissingWindow)
	})

	t.Run("overnight hours wrap past midnight", func(t *testing.T) {
		place := &domain.Place{
			ID:        "p1",
			OpenTime:  "18:00",
			CloseTime: "02:00",
		}
		// Activity window 10:00 - 01:00 next day.
		segments, err := calc.ComputeOperationalSegments(place, 600, 1500)
		assert.NoError(t, err)
		assert.Equal(t, []interval.Interval{{Start: 1080, End: 1500}}, segments)
	})
}

func TestCalculateEffectiveWindows(t *testing.T) {
	calc := timewindow.NewCalculator(zap.NewNop())

	t.Run("restaurant gets one tagged window per satisfied meal", func(t *testing.T) {
		places := []domain.Place{
			{ID: "r1", Name: "Bistro", Category: domain.CategoryRestaurant, OpenTime: "11:00", CloseTime: "22:00"},
		}
		windows, err := calc.CalculateEffectiveWindows(places, testUser())
		assert.NoError(t, err)

		wins := windows["r1"]
		assert.Len(t, wins, 2)
		// Sorted meal order: dinner before lunch.
		assert.Equal(t, "dinner", wins[0].Meal)
		assert.Equal(t, domain.Window{Open: 1110, Close: 1290, Meal: "dinner"}, wins[0])
		assert.Equal(t, domain.Window{Open: 690, Close: 870, Meal: "lunch"}, wins[1])
	})

	t.Run("restaurant with no meal overlap fails", func(t *testing.T) {
		places := []domain.Place{
			{ID: "r1", Name: "Night bar", Category: domain.CategoryRestaurant, OpenTime: "15:00", CloseTime: "17:00"},
		}
		user := &domain.User{
			StartTime: "08:00",
			EndTime:   "22:00",
			MealTimePreferences: map[string][]string{
				"breakfast": {"08:00", "10:00"},
			},
		}
		_, err := calc.CalculateEffectiveWindows(places, user)
		assert.ErrorIs(t, err, apperrors.ErrNoFeasibleMealWindow)
	})

	t.Run("non-restaurant gets one untagged window per segment", func(t *testing.T) {
		places := []domain.Place{
			{ID: "m1", Name: "Museum", Category: domain.CategoryLandmark,
				OpenTime: "09:00", CloseTime: "20:00", BreakTime: []string{"13:00", "15:00"}},
		}
		windows, err := calc.CalculateEffectiveWindows(places, testUser())
		assert.NoError(t, err)
		assert.Equal(t, []domain.Window{
			{Open: 540, Close: 780},
			{Open: 900, Close: 1200},
		}, windows["m1"])
	})

	t.Run("empty place list fails", func(t *testing.T) {
		_, err := calc.CalculateEffectiveWindows(nil, testUser())
		assert.ErrorIs(t, err, apperrors.ErrEmptyPlaces)
	})
}
