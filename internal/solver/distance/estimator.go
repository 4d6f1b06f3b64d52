// Package distance builds the pairwise travel-cost matrix the optimizer
// consumes. The haversine estimator is a stand-in for a real travel-time
// provider; any estimator producing a symmetric, non-negative matrix works.
package distance

import (
	"math"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/utils"
)

// Estimator produces an N×N symmetric, non-negative cost matrix for the
// given places.
type Estimator interface {
	BuildMatrix(places []domain.Place) [][]int
}

// HaversineEstimator prices an arc at the great-circle distance in tenths of
// a kilometer.
type HaversineEstimator struct{}

func NewHaversineEstimator() *HaversineEstimator {
	return &HaversineEstimator{}
}

func (e *HaversineEstimator) BuildMatrix(places []domain.Place) [][]int {
	n := len(places)
	matrix := make([][]int, n)
	for i := range matrix {
		matrix[i] = make([]int, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			km := utils.HaversineDistance(places[i].Lat, places[i].Lon, places[j].Lat, places[j].Lon)
			cost := int(math.Round(km * 10))
			matrix[i][j] = cost
			matrix[j][i] = cost
		}
	}

	return matrix
}
