package domain

import "time"

// Itinerary is a persisted day plan: the winning route for one planning
// request, stored for later retrieval.
type Itinerary struct {
	ID          string       `json:"id" db:"id"`
	Date        string       `json:"date,omitempty" db:"date"`
	Objective   int64        `json:"objective" db:"objective"`
	MealChoices []string     `json:"meal_choices,omitempty" db:"-"`
	Visits      []RouteVisit `json:"route" db:"-"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}
