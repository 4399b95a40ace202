package clique

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Subspace is a set of dimensions together with its dense units. Units of
// one subspace are distinct grid cells, so their id sets are disjoint.
// Subspaces are immutable; Join builds a new one.
type Subspace struct {
	dims     []int
	units    []*Unit
	coverage int
}

// newSubspace builds a subspace over dims from units whose intervals cover
// exactly dims. Units are put into canonical (bin) order.
func newSubspace(dims []int, units []*Unit) *Subspace {
	sortUnits(units)
	s := &Subspace{dims: dims, units: units}
	for _, u := range units {
		s.coverage += len(u.ids)
	}
	return s
}

// Dims returns the ascending dimension indices. The returned slice must not
// be modified.
func (s *Subspace) Dims() []int { return s.dims }

// Units returns the dense units in bin order. The returned slice must not be
// modified.
func (s *Subspace) Units() []*Unit { return s.units }

// Coverage returns the number of points inside the subspace's dense units.
func (s *Subspace) Coverage() int { return s.coverage }

// Dimensionality returns len(Dims()).
func (s *Subspace) Dimensionality() int { return len(s.dims) }

// joinable reports whether s and o share all but their last dimension and
// differ in that last one.
func (s *Subspace) joinable(o *Subspace) bool {
	k := len(s.dims)
	if k == 0 || k != len(o.dims) {
		return false
	}
	return slices.Equal(s.dims[:k-1], o.dims[:k-1]) && s.dims[k-1] != o.dims[k-1]
}

// Join combines s and o into a subspace of one more dimension. The units of
// the result are the intersections of every pair of units agreeing on the
// shared dimensions, kept only if they hold at least a tau fraction of total
// points.
//
// Join returns nil if s and o do not share all but their last dimension, or
// if no resulting unit is dense. It returns an error wrapping
// ErrIncompatibleSubspaces if s and o differ in dimensionality. The result
// does not depend on the order of s and o.
func (s *Subspace) Join(o *Subspace, total int, tau float64) (*Subspace, error) {
	if len(s.dims) != len(o.dims) || len(s.dims) == 0 {
		return nil, fmt.Errorf("%w: cannot join %v with %v", ErrIncompatibleSubspaces, s.dims, o.dims)
	}
	if !s.joinable(o) {
		return nil, nil
	}
	k := len(s.dims)
	s1, s2 := s, o
	if s1.dims[k-1] > s2.dims[k-1] {
		s1, s2 = s2, s1
	}

	var units []*Unit
	for _, u1 := range s1.units {
		for _, u2 := range s2.units {
			u, ok := joinUnit(u1, u2)
			if !ok || !u.dense(total, tau) {
				continue
			}
			units = append(units, u)
		}
	}
	if len(units) == 0 {
		return nil, nil
	}

	dims := make([]int, 0, k+1)
	dims = append(dims, s1.dims...)
	dims = append(dims, s2.dims[k-1])
	return newSubspace(dims, units), nil
}

// compareCoverage orders subspaces by descending coverage, then by ascending
// dimensions.
func compareCoverage(a, b *Subspace) int {
	if c := cmp.Compare(b.coverage, a.coverage); c != 0 {
		return c
	}
	return slices.Compare(a.dims, b.dims)
}

// sortByCoverage sorts subspaces by descending coverage. Ties are broken by
// the dimension lists so the order is reproducible.
func sortByCoverage(subspaces []*Subspace) {
	slices.SortFunc(subspaces, compareCoverage)
}

// sortByDims sorts subspaces lexicographically by their dimensions.
func sortByDims(subspaces []*Subspace) {
	slices.SortFunc(subspaces, func(a, b *Subspace) int {
		return slices.Compare(a.dims, b.dims)
	})
}

func (s *Subspace) String() string {
	var sb strings.Builder
	sb.WriteString("subspace[")
	for i, d := range s.dims {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(d))
	}
	fmt.Fprintf(&sb, "] coverage=%d units=%d", s.coverage, len(s.units))
	for _, u := range s.units {
		fmt.Fprintf(&sb, "\n  %s #%d", u, len(u.ids))
	}
	return sb.String()
}
