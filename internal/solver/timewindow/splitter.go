package timewindow

import (
	"fmt"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain"
	apperrors "github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/errors"
)

// defaultMealLabel stands in when a restaurant window carries no meal tag.
const defaultMealLabel = "default"

// SplitRestaurantNodes expands every restaurant owning more than one feasible
// window into one candidate node per window, so the optimizer can pick a
// single meal slot per restaurant. All other places pass through untouched.
// The returned slices are index-aligned: one window per place.
func SplitRestaurantNodes(
	places []domain.Place,
	windows domain.WindowSet,
) ([]domain.Place, []domain.Window, error) {
	expanded := make([]domain.Place, 0, len(places))
	aligned := make([]domain.Window, 0, len(places))

	for i := range places {
		place := places[i]

		wins, ok := windows[place.ID]
		if !ok || len(wins) == 0 {
			// CalculateEffectiveWindows guarantees a window per place; a miss
			// here means the inputs were not produced by it.
			return nil, nil, apperrors.ErrMissingWindow.WithDetails(map[string]interface{}{
				"place_id": place.ID, "place": place.Name,
			})
		}

		if place.IsRestaurant() && len(wins) > 1 {
			for _, win := range wins {
				label := win.Meal
				if label == "" {
					label = defaultMealLabel
				}

				node := place
				node.ID = fmt.Sprintf("%s_%s", place.ID, label)
				node.Name = fmt.Sprintf("%s (%s)", place.Name, label)

				expanded = append(expanded, node)
				aligned = append(aligned, win)
			}
			continue
		}

		expanded = append(expanded, place)
		aligned = append(aligned, wins[0])
	}

	return expanded, aligned, nil
}
