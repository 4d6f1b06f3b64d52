package domain

// Category classifies a candidate place. The set is closed; BoundaryResolver
// matches exhaustively over it.
type Category string

const (
	CategoryTransport     Category = "transport"
	CategoryAccommodation Category = "accommodation"
	CategoryRestaurant    Category = "restaurant"
	CategoryLandmark      Category = "landmark"

	// CategoryDummy marks synthetic anchor nodes injected by the optimizer
	// when a day has no hard start or end.
	CategoryDummy Category = "dummy"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryTransport, CategoryAccommodation, CategoryRestaurant, CategoryLandmark, CategoryDummy:
		return true
	}
	return false
}

// Place is a candidate visit for a single day. Immutable per planning call.
type Place struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	OpenTime    string   `json:"open_time"`
	CloseTime   string   `json:"close_time"`
	BreakTime   []string `json:"break_time,omitempty"`
	ServiceTime int      `json:"service_time"`
	IsMandatory bool     `json:"is_mandatory"`
	Tags        []string `json:"tags,omitempty"`
}

func (p *Place) IsTransport() bool {
	return p.Category == CategoryTransport
}

func (p *Place) IsAccommodation() bool {
	return p.Category == CategoryAccommodation
}

func (p *Place) IsRestaurant() bool {
	return p.Category == CategoryRestaurant
}

func (p *Place) IsDummy() bool {
	return p.Category == CategoryDummy
}

// User carries the daily active window and meal preferences.
// Meal preference values are two-element [start, end] clock pairs; entries of
// any other length are skipped during meal-interval computation.
type User struct {
	StartTime           string              `json:"start_time"`
	EndTime             string              `json:"end_time"`
	MealTimePreferences map[string][]string `json:"meal_time_preferences,omitempty"`
}

// DayInfo positions the planned day inside the whole trip. Only the two flags
// drive anchor resolution; date and weekday are informational.
type DayInfo struct {
	Date       string `json:"date,omitempty"`
	Weekday    string `json:"weekday,omitempty"`
	IsFirstDay bool   `json:"is_first_day"`
	IsLastDay  bool   `json:"is_last_day"`
}
