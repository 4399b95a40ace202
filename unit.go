package clique

import (
	"cmp"
	"slices"
	"strings"
)

// Unit is one cell of the grid restricted to a subspace: one interval per
// subspace dimension (ascending by dimension) and the ids of the points that
// fall inside. Units are read-only once built.
type Unit struct {
	intervals []Interval
	ids       []int
}

// Intervals returns the unit's bounds, one per dimension. The returned slice
// must not be modified.
func (u *Unit) Intervals() []Interval { return u.intervals }

// IDs returns the ascending ids of the points inside the unit. The returned
// slice must not be modified.
func (u *Unit) IDs() []int { return u.ids }

// Size returns the number of points inside the unit.
func (u *Unit) Size() int { return len(u.ids) }

// Selectivity returns the fraction of total points inside the unit.
func (u *Unit) Selectivity(total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(len(u.ids)) / float64(total)
}

// dense reports whether the unit holds at least a tau fraction of total.
func (u *Unit) dense(total int, tau float64) bool {
	return total > 0 && u.Selectivity(total) >= tau
}

// Contains reports whether v lies inside the unit's hyper-rectangle.
// v is a full-dimensional vector; only the unit's dimensions are checked.
// NaN coordinates are never contained, although the grid scan files them
// under bin 0.
func (u *Unit) Contains(v []float64) bool {
	for _, iv := range u.intervals {
		if !iv.Contains(v[iv.Dim]) {
			return false
		}
	}
	return true
}

// joinUnit combines u1 and u2 when they agree on every interval except the
// last. The result has u1's intervals followed by u2's last interval and the
// intersection of both id sets. ok is false if the prefixes differ.
func joinUnit(u1, u2 *Unit) (u *Unit, ok bool) {
	k := len(u1.intervals)
	for i := 0; i < k-1; i++ {
		if !u1.intervals[i].Equal(u2.intervals[i]) {
			return nil, false
		}
	}
	intervals := make([]Interval, 0, k+1)
	intervals = append(intervals, u1.intervals...)
	intervals = append(intervals, u2.intervals[k-1])
	return &Unit{intervals: intervals, ids: intersectIDs(u1.ids, u2.ids)}, true
}

// adjacent reports whether u and o touch on every dimension.
// Both units must belong to the same subspace.
func (u *Unit) adjacent(o *Unit) bool {
	for i, iv := range u.intervals {
		if !iv.Touches(o.intervals[i]) {
			return false
		}
	}
	return true
}

// compareUnits orders units of one subspace by their bins, dimension by dimension.
func compareUnits(a, b *Unit) int {
	for i := range a.intervals {
		if c := cmp.Compare(a.intervals[i].Bin, b.intervals[i].Bin); c != 0 {
			return c
		}
	}
	return 0
}

func sortUnits(units []*Unit) {
	slices.SortFunc(units, compareUnits)
}

func (u *Unit) String() string {
	var sb strings.Builder
	for i, iv := range u.intervals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(iv.String())
	}
	return sb.String()
}
