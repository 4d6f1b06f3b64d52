// Package boundary resolves the mandatory start and end anchor of a day's
// route from the day's position inside the trip. Four day types exist, each
// with its own rules about where transport hubs and lodging may appear.
package boundary

import (
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain"
	apperrors "github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/errors"
)

// Resolve determines the start/end anchors for the given places in encounter
// order. A synthetic anchor means the optimizer must inject a dummy node for
// that side.
func Resolve(places []domain.Place, day domain.DayInfo) (domain.Anchors, error) {
	if len(places) == 0 {
		return domain.Anchors{}, apperrors.ErrEmptyPlaces
	}

	switch {
	case day.IsFirstDay && !day.IsLastDay:
		return resolveFirstDay(places)
	case day.IsFirstDay && day.IsLastDay:
		return resolveDayTrip(places)
	case !day.IsFirstDay && day.IsLastDay:
		return resolveLastDay(places)
	default:
		return resolveMiddleDay(places)
	}
}

// First day of a multi-day trip: the traveler arrives at a transport hub and
// the day ends wherever the route leaves off (dummy end), unless lodging
// rules are violated.
func resolveFirstDay(places []domain.Place) (domain.Anchors, error) {
	if !places[0].IsTransport() {
		return domain.Anchors{}, boundaryViolation("first day must start at a transport hub", places[0])
	}

	accommodations := indicesByCategory(places, domain.CategoryAccommodation)
	if len(accommodations) > 1 {
		return domain.Anchors{}, apperrors.ErrBoundaryRule.WithDetails(map[string]interface{}{
			"reason": "first day allows at most one accommodation",
			"count":  len(accommodations),
		})
	}

	return domain.Anchors{
		Start: domain.RealAnchor(0),
		End:   domain.SyntheticAnchor(),
	}, nil
}

// Day trip: arrive and depart through transport hubs the same day. Exactly
// one transport hub besides the first node is required and becomes the end.
func resolveDayTrip(places []domain.Place) (domain.Anchors, error) {
	if !places[0].IsTransport() {
		return domain.Anchors{}, boundaryViolation("day trip must start at a transport hub", places[0])
	}

	var others []int
	for _, idx := range indicesByCategory(places, domain.CategoryTransport) {
		if idx != 0 {
			others = append(others, idx)
		}
	}
	if len(others) != 1 {
		return domain.Anchors{}, apperrors.ErrBoundaryRule.WithDetails(map[string]interface{}{
			"reason": "day trip requires exactly one transport hub besides the start",
			"count":  len(others),
		})
	}

	return domain.Anchors{
		Start: domain.RealAnchor(0),
		End:   domain.RealAnchor(others[0]),
	}, nil
}

// Last day: the day ends at the single transport hub. It starts at the
// lodging when the first place is one; otherwise the start is open. Lodging
// anywhere else is an error.
func resolveLastDay(places []domain.Place) (domain.Anchors, error) {
	start := domain.SyntheticAnchor()
	if places[0].IsAccommodation() {
		start = domain.RealAnchor(0)
	}

	transports := indicesByCategory(places, domain.CategoryTransport)
	if len(transports) != 1 {
		return domain.Anchors{}, apperrors.ErrBoundaryRule.WithDetails(map[string]interface{}{
			"reason": "last day requires exactly one transport hub",
			"count":  len(transports),
		})
	}

	for _, idx := range indicesByCategory(places, domain.CategoryAccommodation) {
		if idx != 0 {
			return domain.Anchors{}, apperrors.ErrBoundaryRule.WithDetails(map[string]interface{}{
				"reason": "last day allows accommodation only as the first place",
				"index":  idx,
			})
		}
	}

	return domain.Anchors{
		Start: start,
		End:   domain.RealAnchor(transports[0]),
	}, nil
}

// Middle day: lodging may pin either end of the day; everything else is open.
func resolveMiddleDay(places []domain.Place) (domain.Anchors, error) {
	accommodations := indicesByCategory(places, domain.CategoryAccommodation)
	if len(accommodations) > 2 {
		return domain.Anchors{}, apperrors.ErrBoundaryRule.WithDetails(map[string]interface{}{
			"reason": "middle day allows at most two accommodations",
			"count":  len(accommodations),
		})
	}

	start := domain.SyntheticAnchor()
	if places[0].IsAccommodation() {
		start = domain.RealAnchor(0)
	}

	end := domain.SyntheticAnchor()
	if places[len(places)-1].IsAccommodation() {
		end = domain.RealAnchor(len(places) - 1)
	}

	// A single-place day has nothing to order; pin it as the start.
	if len(places) == 1 {
		start = domain.RealAnchor(0)
	}

	return domain.Anchors{Start: start, End: end}, nil
}

func indicesByCategory(places []domain.Place, category domain.Category) []int {
	var indices []int
	for i := range places {
		if places[i].Category == category {
			indices = append(indices, i)
		}
	}
	return indices
}

func boundaryViolation(reason string, first domain.Place) *apperrors.AppError {
	return apperrors.ErrBoundaryRule.WithDetails(map[string]interface{}{
		"reason":         reason,
		"first_category": string(first.Category),
	})
}
