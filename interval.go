package clique

import "fmt"

// Interval is the bin [Lo, Hi) of one dimension of the grid. Bin is the
// 0-based position of the interval along its dimension; intervals of the same
// grid compare by (Dim, Bin).
type Interval struct {
	Dim int
	Bin int
	Lo  float64
	Hi  float64
	// Closed marks the last bin of a dimension, which also contains Hi.
	Closed bool
}

// Contains reports whether x lies inside the interval.
func (a Interval) Contains(x float64) bool {
	if a.Closed {
		return x >= a.Lo && x <= a.Hi
	}
	return x >= a.Lo && x < a.Hi
}

// Equal reports whether a and b are the same grid bin.
func (a Interval) Equal(b Interval) bool {
	return a.Dim == b.Dim && a.Bin == b.Bin
}

// Touches reports whether a and b are the same bin or neighbouring bins of
// the same dimension, i.e. they share at least a boundary.
func (a Interval) Touches(b Interval) bool {
	if a.Dim != b.Dim {
		return false
	}
	d := a.Bin - b.Bin
	return d >= -1 && d <= 1
}

// Width returns Hi - Lo.
func (a Interval) Width() float64 {
	return a.Hi - a.Lo
}

func (a Interval) String() string {
	if a.Closed {
		return fmt.Sprintf("d%d:[%.2f; %.2f]", a.Dim, a.Lo, a.Hi)
	}
	return fmt.Sprintf("d%d:[%.2f; %.2f)", a.Dim, a.Lo, a.Hi)
}
