package routing_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/routing"
)

func newTestOptimizer() *routing.Optimizer {
	opts := routing.DefaultOptions()
	opts.TimeBudget = 2 * time.Second
	return routing.NewOptimizer(opts, zap.NewNop())
}

func TestSolveDayTrip(t *testing.T) {
	o := newTestOptimizer()

	in := routing.Input{
		Places: []domain.Place{
			{ID: "airport_in", Name: "Airport", Category: domain.CategoryTransport, IsMandatory: true},
			{ID: "museum", Name: "Museum", Category: domain.CategoryLandmark, ServiceTime: 60, IsMandatory: true},
			{ID: "airport_out", Name: "Airport", Category: domain.CategoryTransport, IsMandatory: true},
		},
		Windows: []domain.Window{
			{Open: 480, Close: 1320},
			{Open: 540, Close: 1080},
			{Open: 480, Close: 1320},
		},
		Anchors: domain.Anchors{
			Start: domain.RealAnchor(0),
			End:   domain.RealAnchor(2),
		},
		GlobalStart: 480,
		GlobalEnd:   1320,
		Matrix: [][]int{
			{0, 30, 100},
			{30, 0, 40},
			{100, 40, 0},
		},
	}

	result, err := o.Solve(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, result.Visits, 3)

	// 0 -> 1: arc 30; 1 -> 2: arc 40 + 60 service.
	assert.Equal(t, int64(130), result.Objective)

	first := result.Visits[0]
	assert.Equal(t, 1, first.Order)
	assert.Equal(t, "airport_in", first.PlaceID)
	assert.Equal(t, 480, first.Arrival)
	assert.Nil(t, first.Travel)

	second := result.Visits[1]
	assert.Equal(t, "museum", second.PlaceID)
	// Travel lands at 510 but the window opens at 530 (540 minus grace).
	assert.Equal(t, 530, second.Arrival)
	assert.Equal(t, 590, second.Departure)
	require.NotNil(t, second.Travel)
	assert.Equal(t, 30, *second.Travel)
	require.NotNil(t, second.Wait)
	assert.Equal(t, 20, *second.Wait)
	assert.Nil(t, second.Delay)

	third := result.Visits[2]
	assert.Equal(t, "airport_out", third.PlaceID)
	assert.Equal(t, 630, third.Arrival)
	assert.Equal(t, 0, third.Stay)
	assert.Equal(t, 630, third.Departure)
}

func TestSolveSkipsUnreachableOptional(t *testing.T) {
	o := newTestOptimizer()

	in := routing.Input{
		Places: []domain.Place{
			{ID: "airport_in", Category: domain.CategoryTransport, IsMandatory: true},
			{ID: "museum", Category: domain.CategoryLandmark, ServiceTime: 60, IsMandatory: true},
			{ID: "airport_out", Category: domain.CategoryTransport, IsMandatory: true},
			{ID: "viewpoint", Category: domain.CategoryLandmark, IsMandatory: false},
		},
		Windows: []domain.Window{
			{Open: 480, Close: 1320},
			{Open: 540, Close: 1080},
			{Open: 480, Close: 1320},
			{Open: 480, Close: 1320},
		},
		Anchors: domain.Anchors{
			Start: domain.RealAnchor(0),
			End:   domain.RealAnchor(2),
		},
		GlobalStart: 480,
		GlobalEnd:   1320,
		Matrix: [][]int{
			{0, 30, 100, 600},
			{30, 0, 40, 600},
			{100, 40, 0, 600},
			{600, 600, 600, 0},
		},
	}

	result, err := o.Solve(context.Background(), in)
	require.NoError(t, err)

	// Visiting the viewpoint never fits the day, so it is skipped for the
	// fixed penalty on top of the three-stop route.
	assert.Equal(t, int64(1130), result.Objective)
	require.Len(t, result.Visits, 3)
	for _, v := range result.Visits {
		assert.NotEqual(t, "viewpoint", v.PlaceID)
	}
}

func TestSolveChargesLateness(t *testing.T) {
	o := newTestOptimizer()

	in := routing.Input{
		Places: []domain.Place{
			{ID: "start", Category: domain.CategoryTransport, IsMandatory: true},
			{ID: "chapel", Category: domain.CategoryLandmark, IsMandatory: true},
			{ID: "end", Category: domain.CategoryTransport, IsMandatory: true},
		},
		Windows: []domain.Window{
			{Open: 480, Close: 1320},
			{Open: 540, Close: 600},
			{Open: 480, Close: 1320},
		},
		Anchors: domain.Anchors{
			Start: domain.RealAnchor(0),
			End:   domain.RealAnchor(2),
		},
		GlobalStart: 480,
		GlobalEnd:   1320,
		Matrix: [][]int{
			{0, 130, 500},
			{130, 0, 40},
			{500, 40, 0},
		},
	}

	result, err := o.Solve(context.Background(), in)
	require.NoError(t, err)

	// Arrival at the chapel is 610, ten minutes past its close of 600 but
	// still inside the buffered bound. Ten minutes late at 10 per minute.
	assert.Equal(t, int64(130+100+40), result.Objective)
	require.Len(t, result.Visits, 3)
	assert.Equal(t, 610, result.Visits[1].Arrival)
}

func TestSolveInfeasibleMandatory(t *testing.T) {
	o := newTestOptimizer()

	in := routing.Input{
		Places: []domain.Place{
			{ID: "start", Category: domain.CategoryTransport, IsMandatory: true},
			{ID: "dawn_market", Category: domain.CategoryLandmark, IsMandatory: true},
			{ID: "end", Category: domain.CategoryTransport, IsMandatory: true},
		},
		Windows: []domain.Window{
			{Open: 480, Close: 1320},
			// Closes long before the day starts.
			{Open: 100, Close: 200},
			{Open: 480, Close: 1320},
		},
		Anchors: domain.Anchors{
			Start: domain.RealAnchor(0),
			End:   domain.RealAnchor(2),
		},
		GlobalStart: 480,
		GlobalEnd:   1320,
		Matrix: [][]int{
			{0, 10, 10},
			{10, 0, 10},
			{10, 10, 0},
		},
	}

	_, err := o.Solve(context.Background(), in)
	assert.ErrorIs(t, err, routing.ErrInfeasible)
}

func TestSolveSyntheticAnchors(t *testing.T) {
	o := newTestOptimizer()

	in := routing.Input{
		Places: []domain.Place{
			{ID: "museum", Name: "Museum", Category: domain.CategoryLandmark, ServiceTime: 30, IsMandatory: true},
			{ID: "park", Name: "Park", Category: domain.CategoryLandmark, ServiceTime: 30, IsMandatory: true},
		},
		Windows: []domain.Window{
			{Open: 540, Close: 1200},
			{Open: 540, Close: 1200},
		},
		Anchors: domain.Anchors{
			Start: domain.SyntheticAnchor(),
			End:   domain.SyntheticAnchor(),
		},
		GlobalStart: 480,
		GlobalEnd:   1320,
		Matrix: [][]int{
			{0, 50},
			{50, 0},
		},
	}

	result, err := o.Solve(context.Background(), in)
	require.NoError(t, err)

	// Dummy arcs are free; the objective is the single real arc plus the
	// departure service time. Dummies never appear in the output.
	assert.Equal(t, int64(80), result.Objective)
	require.Len(t, result.Visits, 2)
	assert.Equal(t, 1, result.Visits[0].Order)
	assert.Equal(t, 2, result.Visits[1].Order)
	for _, v := range result.Visits {
		assert.NotContains(t, v.PlaceID, "dummy")
	}
}

func TestSolveManyNodesVisitsEveryMandatory(t *testing.T) {
	o := newTestOptimizer()

	// A wide instance: dozens of optional stalls that are never worth the
	// detour, with the mandatory stops sitting at the top of the index range.
	const (
		n        = 67
		startIdx = 0
		nearIdx  = 64
		farIdx   = 65
		endIdx   = 66
	)

	places := make([]domain.Place, n)
	windows := make([]domain.Window, n)
	matrix := make([][]int, n)
	for i := 0; i < n; i++ {
		places[i] = domain.Place{ID: fmt.Sprintf("stall_%02d", i), Category: domain.CategoryLandmark}
		windows[i] = domain.Window{Open: 0, Close: 1440}
		matrix[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if i != j {
				matrix[i][j] = 900
			}
		}
	}
	places[startIdx] = domain.Place{ID: "harbor_in", Category: domain.CategoryTransport, IsMandatory: true}
	places[nearIdx] = domain.Place{ID: "near_gate", Category: domain.CategoryLandmark, IsMandatory: true}
	places[farIdx] = domain.Place{ID: "far_fort", Category: domain.CategoryLandmark, IsMandatory: true}
	places[endIdx] = domain.Place{ID: "harbor_out", Category: domain.CategoryTransport, IsMandatory: true}

	set := func(i, j, d int) {
		matrix[i][j] = d
		matrix[j][i] = d
	}
	set(startIdx, nearIdx, 10)
	set(nearIdx, farIdx, 500)
	set(farIdx, endIdx, 10)
	set(startIdx, farIdx, 600)
	set(startIdx, endIdx, 600)
	set(nearIdx, endIdx, 600)

	in := routing.Input{
		Places:  places,
		Windows: windows,
		Anchors: domain.Anchors{
			Start: domain.RealAnchor(startIdx),
			End:   domain.RealAnchor(endIdx),
		},
		GlobalStart: 0,
		GlobalEnd:   1440,
		Matrix:      matrix,
	}

	result, err := o.Solve(context.Background(), in)
	require.NoError(t, err)

	// Both high-index mandatory stops appear exactly once and every stall is
	// skipped for the fixed penalty: 10 + 500 + 10 travel plus 63 skips.
	assert.Equal(t, int64(520+63*1000), result.Objective)
	require.Len(t, result.Visits, 4)

	seen := make(map[string]int)
	for _, v := range result.Visits {
		seen[v.PlaceID]++
	}
	assert.Equal(t, 1, seen["harbor_in"])
	assert.Equal(t, 1, seen["near_gate"])
	assert.Equal(t, 1, seen["far_fort"])
	assert.Equal(t, 1, seen["harbor_out"])
	assert.Equal(t, "near_gate", result.Visits[1].PlaceID)
	assert.Equal(t, "far_fort", result.Visits[2].PlaceID)
}

func TestSolveSingleNodeDay(t *testing.T) {
	o := newTestOptimizer()

	in := routing.Input{
		Places: []domain.Place{
			{ID: "museum", Category: domain.CategoryLandmark, ServiceTime: 60, IsMandatory: true},
		},
		Windows: []domain.Window{
			{Open: 540, Close: 1200},
		},
		Anchors: domain.Anchors{
			Start: domain.RealAnchor(0),
			End:   domain.SyntheticAnchor(),
		},
		GlobalStart: 480,
		GlobalEnd:   1320,
		Matrix:      [][]int{{0}},
	}

	result, err := o.Solve(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, result.Visits, 1)
	assert.Equal(t, "museum", result.Visits[0].PlaceID)
	assert.Equal(t, int64(0), result.Objective)
}
