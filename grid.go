package clique

import (
	"context"
	"math"
	"slices"
)

// gridEpsilon widens every dimension's maximum so the largest value falls
// strictly inside the last bin.
const gridEpsilon = 1e-4

// grid holds the per-dimension bin layout shared by all units of a run.
type grid struct {
	xsi    int
	minima []float64
	maxima []float64 // widened by gridEpsilon
	widths []float64
}

// newGrid computes minima, maxima and bin widths over points. Non-finite
// coordinates are ignored; a dimension without finite values is treated as a
// constant column at 0.
func newGrid(points []Point, dims, xsi int) *grid {
	g := &grid{
		xsi:    xsi,
		minima: make([]float64, dims),
		maxima: make([]float64, dims),
		widths: make([]float64, dims),
	}
	for d := 0; d < dims; d++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, p := range points {
			v := p.Vector[d]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
		if lo > hi {
			lo, hi = 0, 0
		}
		g.minima[d] = lo
		g.maxima[d] = hi + gridEpsilon
		g.widths[d] = (g.maxima[d] - g.minima[d]) / float64(xsi)
	}
	return g
}

// bin returns the index of the interval of dimension d holding v.
// NaN and anything at or below the minimum map to bin 0, anything at or
// above the widened maximum to the last bin. Zero-width bins always map to 0.
func (g *grid) bin(d int, v float64) int {
	w := g.widths[d]
	if math.IsNaN(v) || !(w > 0) {
		return 0
	}
	q := (v - g.minima[d]) / w
	switch {
	case !(q > 0):
		return 0
	case q >= float64(g.xsi-1):
		return g.xsi - 1
	}
	return int(q)
}

// interval returns the bounds of bin b of dimension d.
func (g *grid) interval(d, b int) Interval {
	iv := Interval{
		Dim: d,
		Bin: b,
		Lo:  g.minima[d] + float64(b)*g.widths[d],
		Hi:  g.minima[d] + float64(b+1)*g.widths[d],
	}
	if b == g.xsi-1 {
		iv.Hi = g.maxima[d]
		iv.Closed = true
	}
	return iv
}

// oneDimensionalUnits builds all xsi units of every dimension and fills them
// with the ids of points. units[d][b] is bin b of dimension d. Each dimension
// is scanned by one worker, which exclusively owns that dimension's units.
func oneDimensionalUnits(ctx context.Context, points []Point, g *grid, workers int) ([][]*Unit, error) {
	dims := len(g.minima)
	units := make([][]*Unit, dims)
	err := parallelFor(ctx, dims, workers, func(d int) error {
		ids := make([][]int, g.xsi)
		for _, p := range points {
			b := g.bin(d, p.Vector[d])
			ids[b] = append(ids[b], p.ID)
		}
		row := make([]*Unit, g.xsi)
		for b := range row {
			slices.Sort(ids[b])
			row[b] = &Unit{intervals: []Interval{g.interval(d, b)}, ids: slices.Clip(ids[b])}
		}
		units[d] = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return units, nil
}
