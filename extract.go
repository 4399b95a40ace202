package clique

import "slices"

// Clusters returns the connected components of the subspace's dense units.
// Two units are connected when, on every dimension, their intervals are the
// same bin or neighbouring bins. Each component yields one cluster whose ids
// are the union of its units' ids; clusters are ordered by their first unit.
func (s *Subspace) Clusters() []SubspaceCluster {
	n := len(s.units)
	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if s.units[i].adjacent(s.units[j]) {
				uf.union(i, j)
			}
		}
	}

	comps := uf.components()
	clusters := make([]SubspaceCluster, 0, len(comps))
	for _, members := range comps {
		sets := make([][]int, len(members))
		for i, m := range members {
			sets[i] = s.units[m].ids
		}
		clusters = append(clusters, SubspaceCluster{
			Dims: slices.Clone(s.dims),
			IDs:  unionIDs(sets...),
		})
	}
	return clusters
}
