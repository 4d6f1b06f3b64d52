package dto

import (
	"time"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain"
)

// ItineraryResponse is a persisted day plan.
type ItineraryResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date,omitempty"`
	Objective   int64           `json:"objective"`
	MealChoices []string        `json:"meal_choices,omitempty"`
	Route       []VisitResponse `json:"route"`
	CreatedAt   time.Time       `json:"created_at"`
}

func ConvertItinerary(it *domain.Itinerary) ItineraryResponse {
	route := make([]VisitResponse, 0, len(it.Visits))
	for _, v := range it.Visits {
		route = append(route, ConvertVisit(v))
	}
	return ItineraryResponse{
		ID:          it.ID,
		Date:        it.Date,
		Objective:   it.Objective,
		MealChoices: it.MealChoices,
		Route:       route,
		CreatedAt:   it.CreatedAt,
	}
}

type ItineraryListResponse struct {
	Itineraries []ItineraryResponse `json:"itineraries"`
	Total       int                 `json:"total"`
}
