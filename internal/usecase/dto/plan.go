package dto

import (
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain"
)

// PlanRequest is the input document for one day's optimization.
type PlanRequest struct {
	Places  []PlaceRequest `json:"places" validate:"required,min=1,dive"`
	User    UserRequest    `json:"user" validate:"required"`
	DayInfo DayInfoRequest `json:"day_info"`
}

type PlaceRequest struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required,oneof=transport accommodation restaurant landmark"`
	Lat         float64  `json:"lat" validate:"min=-90,max=90"`
	Lon         float64  `json:"lon" validate:"min=-180,max=180"`
	OpenTime    string   `json:"open_time" validate:"required,clock"`
	CloseTime   string   `json:"close_time" validate:"required,clock"`
	BreakTime   []string `json:"break_time,omitempty"`
	ServiceTime int      `json:"service_time" validate:"min=0"`
	IsMandatory *bool    `json:"is_mandatory,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type UserRequest struct {
	StartTime           string              `json:"start_time" validate:"required,clock"`
	EndTime             string              `json:"end_time" validate:"required,clock"`
	MealTimePreferences map[string][]string `json:"meal_time_preferences,omitempty"`
}

type DayInfoRequest struct {
	Date       string `json:"date,omitempty"`
	Weekday    string `json:"weekday,omitempty"`
	IsFirstDay bool   `json:"is_first_day"`
	IsLastDay  bool   `json:"is_last_day"`
}

// ToDomainPlaces converts request places, defaulting is_mandatory to true
// when absent.
func (r *PlanRequest) ToDomainPlaces() []domain.Place {
	places := make([]domain.Place, 0, len(r.Places))
	for _, p := range r.Places {
		mandatory := true
		if p.IsMandatory != nil {
			mandatory = *p.IsMandatory
		}
		places = append(places, domain.Place{
			ID:          p.ID,
			Name:        p.Name,
			Category:    domain.Category(p.Category),
			Lat:         p.Lat,
			Lon:         p.Lon,
			OpenTime:    p.OpenTime,
			CloseTime:   p.CloseTime,
			BreakTime:   p.BreakTime,
			ServiceTime: p.ServiceTime,
			IsMandatory: mandatory,
			Tags:        p.Tags,
		})
	}
	return places
}

func (r *PlanRequest) ToDomainUser() *domain.User {
	return &domain.User{
		StartTime:           r.User.StartTime,
		EndTime:             r.User.EndTime,
		MealTimePreferences: r.User.MealTimePreferences,
	}
}

func (r *PlanRequest) ToDomainDayInfo() domain.DayInfo {
	return domain.DayInfo{
		Date:       r.DayInfo.Date,
		Weekday:    r.DayInfo.Weekday,
		IsFirstDay: r.DayInfo.IsFirstDay,
		IsLastDay:  r.DayInfo.IsLastDay,
	}
}
