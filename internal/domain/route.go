package domain

// Anchor designates the mandatory first or last node of a day's route.
// A synthetic anchor means no real place is pinned to that side; the optimizer
// injects a zero-cost dummy node in its place.
type Anchor struct {
	Index     int
	Synthetic bool
}

func RealAnchor(index int) Anchor {
	return Anchor{Index: index}
}

func SyntheticAnchor() Anchor {
	return Anchor{Index: -1, Synthetic: true}
}

// Anchors is the resolved start/end pair for one optimization call.
type Anchors struct {
	Start Anchor
	End   Anchor
}

// RouteVisit is one stop of the computed itinerary. Times are minutes since
// the day's reference midnight and may exceed 1440 for next-day arrivals.
// Travel, Wait and Delay are nil when not applicable (first visit, no slack,
// no lateness).
type RouteVisit struct {
	Order     int    `json:"order"`
	PlaceID   string `json:"place_id"`
	PlaceName string `json:"place"`
	Arrival   int    `json:"arrival"`
	Departure int    `json:"departure"`
	Stay      int    `json:"stay_duration"`
	Travel    *int   `json:"travel_time,omitempty"`
	Wait      *int   `json:"wait_time,omitempty"`
	Delay     *int   `json:"delay_time,omitempty"`
}

// RouteResult is a feasible ordered day plan with its objective value
// (lower is better).
type RouteResult struct {
	Visits    []RouteVisit `json:"route"`
	Objective int64        `json:"objective"`
}
