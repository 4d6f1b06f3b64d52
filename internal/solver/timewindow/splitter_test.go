package timewindow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain"
	apperrors "github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/errors"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/timewindow"
)

func TestSplitRestaurantNodes(t *testing.T) {
	t.Run("multi-window restaurant expands into one node per window", func(t *testing.T) {
		places := []domain.Place{
			{ID: "m1", Name: "Museum", Category: domain.CategoryLandmark},
			{ID: "r1", Name: "Bistro", Category: domain.CategoryRestaurant, ServiceTime: 60},
		}
		windows := domain.WindowSet{
			"m1": {{Open: 540, Close: 1200}},
			"r1": {
				{Open: 690, Close: 870, Meal: "lunch"},
				{Open: 1110, Close: 1290, Meal: "dinner"},
			},
		}

		expanded, aligned, err := timewindow.SplitRestaurantNodes(places, windows)
		assert.NoError(t, err)
		assert.Len(t, expanded, 3)
		assert.Len(t, aligned, 3)

		assert.Equal(t, "m1", expanded[0].ID)

		assert.Equal(t, "r1_lunch", expanded[1].ID)
		assert.Equal(t, "Bistro (lunch)", expanded[1].Name)
		assert.Equal(t, 60, expanded[1].ServiceTime)
		assert.Equal(t, "lunch", aligned[1].Meal)

		assert.Equal(t, "r1_dinner", expanded[2].ID)
		assert.Equal(t, "Bistro (dinner)", expanded[2].Name)
		assert.Equal(t, "dinner", aligned[2].Meal)
	})

	t.Run("single-window restaurant passes through untouched", func(t *testing.T) {
		places := []domain.Place{
			{ID: "r1", Name: "Bistro", Category: domain.CategoryRestaurant},
		}
		windows := domain.WindowSet{
			"r1": {{Open: 690, Close: 870, Meal: "lunch"}},
		}

		expanded, aligned, err := timewindow.SplitRestaurantNodes(places, windows)
		assert.NoError(t, err)
		assert.Len(t, expanded, 1)
		assert.Equal(t, "r1", expanded[0].ID)
		assert.Equal(t, "Bistro", expanded[0].Name)
		assert.Equal(t, "lunch", aligned[0].Meal)
	})

	t.Run("untagged window falls back to the default label", func(t *testing.T) {
		places := []domain.Place{
			{ID: "r1", Name: "Bistro", Category: domain.CategoryRestaurant},
		}
		windows := domain.WindowSet{
			"r1": {
				{Open: 690, Close: 870},
				{Open: 1110, Close: 1290, Meal: "dinner"},
			},
		}

		expanded, _, err := timewindow.SplitRestaurantNodes(places, windows)
		assert.NoError(t, err)
		assert.Equal(t, "r1_default", expanded[0].ID)
		assert.Equal(t, "r1_dinner", expanded[1].ID)
	})

	t.Run("place without windows fails", func(t *testing.T) {
		places := []domain.Place{
			{ID: "m1", Name: "Museum", Category: domain.CategoryLandmark},
		}
		_, _, err := timewindow.SplitRestaurantNodes(places, domain.WindowSet{})
		assert.ErrorIs(t, err, apperrors.ErrMissingWindow)
	})
}
