package errors

import "net/http"

var (
	ErrEmptyPlaces = New(
		"EMPTY_PLACES",
		"Places list is empty",
		http.StatusBadRequest,
	)

	ErrInvalidClock = New(
		"INVALID_CLOCK",
		"Invalid clock string, expected HH:MM",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidInterval = New(
		"INVALID_INTERVAL",
		"Interval end does not exceed start after midnight correction",
		http.StatusBadRequest,
	)

	ErrNoFeasibleMealWindow = New(
		"NO_FEASIBLE_MEAL_WINDOW",
		"Restaurant has no window matching any meal preference",
		http.StatusUnprocessableEntity,
	)

	ErrMissingWindow = New(
		"MISSING_WINDOW",
		"Place has no effective time window",
		http.StatusUnprocessableEntity,
	)

	ErrBoundaryRule = New(
		"BOUNDARY_RULE_VIOLATION",
		"Day boundary rule violated",
		http.StatusUnprocessableEntity,
	)

	ErrAllCombinationsInfeasible = New(
		"ALL_COMBINATIONS_INFEASIBLE",
		"No meal combination yields a feasible route",
		http.StatusUnprocessableEntity,
	)

	ErrItineraryNotFound = New(
		"ITINERARY_NOT_FOUND",
		"Itinerary not found",
		http.StatusNotFound,
	)

	ErrInvalidItineraryID = New(
		"INVALID_ITINERARY_ID",
		"Invalid itinerary ID",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
