package clique

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Centroid returns the mean vector of the cluster's member points over all
// dimensions, not only the cluster's subspace. Each dimension is averaged over
// the members that have a value there: NaN coordinates count as missing, and a
// dimension missing in every member is NaN. Ids missing from points are
// skipped. Returns nil when no member is found.
func Centroid(points []Point, c SubspaceCluster) []float64 {
	if len(c.IDs) == 0 || len(points) == 0 {
		return nil
	}
	byID := make(map[int]int, len(points))
	for i, p := range points {
		byID[p.ID] = i
	}

	dims := len(points[0].Vector)
	sum := make([]float64, dims)
	counts := make([]float64, dims)
	n := 0
	for _, id := range c.IDs {
		i, ok := byID[id]
		if !ok {
			continue
		}
		for d, v := range points[i].Vector {
			if math.IsNaN(v) {
				continue
			}
			sum[d] += v
			counts[d]++
		}
		n++
	}
	if n == 0 {
		return nil
	}
	floats.Div(sum, counts)
	return sum
}
