package domain

// Window is one feasible visiting interval for a place, in minutes since the
// day's reference midnight. Values may exceed 1440 when an interval wraps past
// midnight. Meal is empty for non-restaurant windows.
type Window struct {
	Open  int    `json:"open"`
	Close int    `json:"close"`
	Meal  string `json:"meal,omitempty"`
}

// WindowSet maps a place ID to its feasible windows. Restaurants may own
// several (one per satisfied meal slot); every other place owns exactly one
// window per operational segment.
type WindowSet map[string][]Window
