// Package timewindow derives per-place feasible visiting windows from raw
// opening hours, break periods, the user's daily activity window and meal
// preferences.
package timewindow

import (
	"sort"

	"go.uber.org/zap"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain"
	apperrors "github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/errors"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/utils"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/interval"
)

// mealGraceMinutes widens each meal preference on both sides so a meal can
// start a little before or run a little past the preferred slot.
const mealGraceMinutes = 30

type Calculator struct {
	logger *zap.Logger
}

func NewCalculator(logger *zap.Logger) *Calculator {
	return &Calculator{logger: logger}
}

// ComputeMealIntervals converts meal preferences into widened minute
// intervals clipped to the global activity window. Preferences that are not
// two-element pairs, or whose widened interval degenerates after clipping,
// are dropped.
func (c *Calculator) ComputeMealIntervals(
	preferences map[string][]string,
	globalStart, globalEnd int,
) (map[string]interval.Interval, error) {
	intervals := make(map[string]interval.Interval)

	for meal, pair := range preferences {
		if len(pair) != 2 {
			continue
		}

		start, err := utils.TimeToMinutes(pair[0])
		if err != nil {
			return nil, apperrors.ErrInvalidClock.WithDetails(map[string]interface{}{
				"meal": meal, "value": pair[0],
			})
		}
		end, err := utils.TimeToMinutes(pair[1])
		if err != nil {
			return nil, apperrors.ErrInvalidClock.WithDetails(map[string]interface{}{
				"meal": meal, "value": pair[1],
			})
		}

		normalized, err := interval.Normalize(start, end)
		if err != nil {
			return nil, apperrors.ErrInvalidInterval.WithDetails(map[string]interface{}{
				"meal": meal,
			})
		}

		adjusted := interval.Interval{
			Start: max(globalStart, normalized.Start-mealGraceMinutes),
			End:   min(globalEnd, normalized.End+mealGraceMinutes),
		}
		if adjusted.Start >= adjusted.End {
			c.logger.Debug("Meal preference outside activity window, dropped",
				zap.String("meal", meal))
			continue
		}
		intervals[meal] = adjusted
	}

	return intervals, nil
}

// computeEffectiveWindow normalizes a place's opening hours and clips them to
// the global activity window.
func computeEffectiveWindow(place *domain.Place, globalStart, globalEnd int) (interval.Interval, error) {
	open, err := utils.TimeToMinutes(place.OpenTime)
	if err != nil {
		return interval.Interval{}, apperrors.ErrInvalidClock.WithDetails(map[string]interface{}{
			"place_id": place.ID, "field": "open_time", "value": place.OpenTime,
		})
	}
	closed, err := utils.TimeToMinutes(place.CloseTime)
	if err != nil {
		return interval.Interval{}, apperrors.ErrInvalidClock.WithDetails(map[string]interface{}{
			"place_id": place.ID, "field": "close_time", "value": place.CloseTime,
		})
	}

	normalized, err := interval.Normalize(open, closed)
	if err != nil {
		return interval.Interval{}, apperrors.ErrInvalidInterval.WithDetails(map[string]interface{}{
			"place_id": place.ID,
		})
	}

	return interval.Interval{
		Start: max(normalized.Start, globalStart),
		End:   min(normalized.End, globalEnd),
	}, nil
}

// ComputeOperationalSegments returns a place's effective window minus its
// break periods. Break lists of odd length are malformed and skipped whole;
// break pairs that fail to parse are skipped individually. Both behaviors are
// deliberately permissive.
func (c *Calculator) ComputeOperationalSegments(
	place *domain.Place,
	globalStart, globalEnd int,
) ([]interval.Interval, error) {
	effective, err := computeEffectiveWindow(place, globalStart, globalEnd)
	if err != nil {
		return nil, err
	}
	if effective.Start >= effective.End {
		return nil, apperrors.ErrMissingWindow.WithDetails(map[string]interface{}{
			"place_id": place.ID, "place": place.Name,
		})
	}

	var breaks []interval.Interval
	if len(place.BreakTime) > 0 && len(place.BreakTime)%2 == 0 {
		for i := 0; i+1 < len(place.BreakTime); i += 2 {
			start, err := utils.TimeToMinutes(place.BreakTime[i])
			if err != nil {
				continue
			}
			end, err := utils.TimeToMinutes(place.BreakTime[i+1])
			if err != nil {
				continue
			}
			normalized, err := interval.Normalize(start, end)
			if err != nil {
				continue
			}
			if overlap, ok := interval.Intersect(effective, normalized); ok {
				breaks = append(breaks, overlap)
			}
		}
	} else if len(place.BreakTime)%2 != 0 {
		c.logger.Warn("Odd-length break_time list ignored",
			zap.String("place_id", place.ID),
			zap.Int("entries", len(place.BreakTime)))
	}

	if len(breaks) == 0 {
		return []interval.Interval{effective}, nil
	}

	segments := interval.Subtract(effective, breaks)
	if len(segments) == 0 {
		return nil, apperrors.ErrMissingWindow.WithDetails(map[string]interface{}{
			"place_id": place.ID, "place": place.Name,
		})
	}
	return segments, nil
}

// computeRestaurantWindows intersects one operational segment with every meal
// interval, tagging each hit with its meal label. Meals are visited in sorted
// order so the produced window order is stable.
func computeRestaurantWindows(
	segment interval.Interval,
	mealIntervals map[string]interval.Interval,
) []domain.Window {
	meals := make([]string, 0, len(mealIntervals))
	for meal := range mealIntervals {
		meals = append(meals, meal)
	}
	sort.Strings(meals)

	var windows []domain.Window
	for _, meal := range meals {
		if overlap, ok := interval.Intersect(segment, mealIntervals[meal]); ok {
			windows = append(windows, domain.Window{
				Open:  overlap.Start,
				Close: overlap.End,
				Meal:  meal,
			})
		}
	}
	return windows
}

// CalculateEffectiveWindows is the top-level entry: it maps every place ID to
// its feasible windows. Restaurants get one tagged window per satisfied meal
// slot across all their operational segments and fail hard when none is
// satisfied; every other place gets one untagged window per segment.
func (c *Calculator) CalculateEffectiveWindows(
	places []domain.Place,
	user *domain.User,
) (domain.WindowSet, error) {
	if len(places) == 0 {
		return nil, apperrors.ErrEmptyPlaces
	}

	globalStart, err := utils.TimeToMinutes(user.StartTime)
	if err != nil {
		return nil, apperrors.ErrInvalidClock.WithDetails(map[string]interface{}{
			"field": "start_time", "value": user.StartTime,
		})
	}
	globalEnd, err := utils.TimeToMinutes(user.EndTime)
	if err != nil {
		return nil, apperrors.ErrInvalidClock.WithDetails(map[string]interface{}{
			"field": "end_time", "value": user.EndTime,
		})
	}
	globalWindow, err := interval.Normalize(globalStart, globalEnd)
	if err != nil {
		return nil, apperrors.ErrInvalidInterval.WithDetails(map[string]interface{}{
			"field": "start_time/end_time",
		})
	}
	globalStart, globalEnd = globalWindow.Start, globalWindow.End

	mealIntervals, err := c.ComputeMealIntervals(user.MealTimePreferences, globalStart, globalEnd)
	if err != nil {
		return nil, err
	}

	windows := make(domain.WindowSet, len(places))
	for i := range places {
		place := &places[i]

		segments, err := c.ComputeOperationalSegments(place, globalStart, globalEnd)
		if err != nil {
			return nil, err
		}

		if place.IsRestaurant() {
			var tagged []domain.Window
			for _, segment := range segments {
				tagged = append(tagged, computeRestaurantWindows(segment, mealIntervals)...)
			}
			if len(tagged) == 0 {
				return nil, apperrors.ErrNoFeasibleMealWindow.WithDetails(map[string]interface{}{
					"place_id": place.ID, "place": place.Name,
				})
			}
			windows[place.ID] = tagged
			continue
		}

		plain := make([]domain.Window, 0, len(segments))
		for _, segment := range segments {
			plain = append(plain, domain.Window{Open: segment.Start, Close: segment.End})
		}
		windows[place.ID] = plain
	}

	return windows, nil
}
