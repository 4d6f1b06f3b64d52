package dto

import (
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/utils"
)

// VisitResponse is one stop of a computed route. Arrival and departure keep
// the unreduced HH:MM form, so next-day times render as "25:30" rather than
// wrapping. Travel, wait and delay appear only when positive.
type VisitResponse struct {
	Order        int    `json:"order"`
	Place        string `json:"place"`
	PlaceID      string `json:"place_id"`
	ArrivalStr   string `json:"arrival_str"`
	DepartureStr string `json:"departure_str"`
	StayDuration string `json:"stay_duration"`
	TravelTime   string `json:"travel_time,omitempty"`
	WaitTime     string `json:"wait_time,omitempty"`
	DelayTime    string `json:"delay_time,omitempty"`
}

// CombinationResponse reports one meal combination's outcome: a route with
// its objective, or a null objective with the reason it produced no route.
type CombinationResponse struct {
	MealChoices map[string]string `json:"meal_choices,omitempty"`
	Objective   *int64            `json:"objective"`
	Route       []VisitResponse   `json:"route,omitempty"`
	Reason      string            `json:"reason,omitempty"`
}

// PlanResponse is the full answer for a day: the winning combination plus
// every evaluated combination. Best is null when no combination is feasible.
type PlanResponse struct {
	Best         *CombinationResponse  `json:"best"`
	Combinations []CombinationResponse `json:"combinations"`
}

// ConvertRouteResult renders a solved route for the API.
func ConvertRouteResult(result *domain.RouteResult) []VisitResponse {
	visits := make([]VisitResponse, 0, len(result.Visits))
	for _, v := range result.Visits {
		visits = append(visits, ConvertVisit(v))
	}
	return visits
}

func ConvertVisit(v domain.RouteVisit) VisitResponse {
	resp := VisitResponse{
		Order:        v.Order,
		Place:        v.PlaceName,
		PlaceID:      v.PlaceID,
		ArrivalStr:   utils.MinutesToTimeStr(v.Arrival),
		DepartureStr: utils.MinutesToTimeStr(v.Departure),
		StayDuration: utils.MinutesToTimeStr(v.Stay),
	}
	if v.Travel != nil {
		resp.TravelTime = utils.MinutesToTimeStr(*v.Travel)
	}
	if v.Wait != nil && *v.Wait > 0 {
		resp.WaitTime = utils.MinutesToTimeStr(*v.Wait)
	}
	if v.Delay != nil && *v.Delay > 0 {
		resp.DelayTime = utils.MinutesToTimeStr(*v.Delay)
	}
	return resp
}
