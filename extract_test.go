package clique

import (
	"reflect"
	"testing"
)

func TestUnit_Adjacent(t *testing.T) {
	base := testUnit(nil, cell{0, 2}, cell{1, 2})
	tests := []struct {
		name  string
		other *Unit
		want  bool
	}{
		{"same cell", testUnit(nil, cell{0, 2}, cell{1, 2}), true},
		{"face neighbour", testUnit(nil, cell{0, 3}, cell{1, 2}), true},
		{"face neighbour below", testUnit(nil, cell{0, 2}, cell{1, 1}), true},
		{"diagonal", testUnit(nil, cell{0, 1}, cell{1, 3}), true},
		{"gap on one axis", testUnit(nil, cell{0, 4}, cell{1, 2}), false},
		{"gap on both axes", testUnit(nil, cell{0, 0}, cell{1, 0}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.adjacent(tt.other); got != tt.want {
				t.Errorf("adjacent = %v, want %v", got, tt.want)
			}
			if got := tt.other.adjacent(base); got != tt.want {
				t.Errorf("adjacent (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubspace_ClustersConnected(t *testing.T) {
	// An L-shaped chain of three cells and one isolated cell.
	s := testSubspace([]int{0, 1},
		testUnit([]int{1, 2}, cell{0, 0}, cell{1, 0}),
		testUnit([]int{3}, cell{0, 1}, cell{1, 0}),
		testUnit([]int{4, 9}, cell{0, 1}, cell{1, 1}),
		testUnit([]int{5, 6}, cell{0, 5}, cell{1, 5}),
	)
	clusters := s.Clusters()
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	if !reflect.DeepEqual(clusters[0].IDs, []int{1, 2, 3, 4, 9}) {
		t.Errorf("cluster 0 ids: got %v, want [1 2 3 4 9]", clusters[0].IDs)
	}
	if !reflect.DeepEqual(clusters[1].IDs, []int{5, 6}) {
		t.Errorf("cluster 1 ids: got %v, want [5 6]", clusters[1].IDs)
	}
	for _, c := range clusters {
		if !reflect.DeepEqual(c.Dims, []int{0, 1}) {
			t.Errorf("cluster dims: got %v, want [0 1]", c.Dims)
		}
	}
}

func TestSubspace_ClustersSingletons(t *testing.T) {
	s := testSubspace([]int{3},
		testUnit([]int{1}, cell{3, 0}),
		testUnit([]int{2}, cell{3, 2}),
		testUnit([]int{3}, cell{3, 4}),
	)
	clusters := s.Clusters()
	if len(clusters) != 3 {
		t.Fatalf("expected 3 singleton clusters, got %d", len(clusters))
	}
	for i, c := range clusters {
		if len(c.IDs) != 1 || c.IDs[0] != i+1 {
			t.Errorf("cluster %d: ids %v, want [%d]", i, c.IDs, i+1)
		}
	}
}

func TestSubspace_ClustersOwnTheirSlices(t *testing.T) {
	ids := []int{1, 2}
	s := testSubspace([]int{0}, testUnit(ids, cell{0, 0}))
	clusters := s.Clusters()
	clusters[0].IDs[0] = 99
	clusters[0].Dims[0] = 99
	if ids[0] != 1 || s.Dims()[0] != 0 {
		t.Error("modifying a cluster changed the subspace")
	}
}

func TestSubspace_ClustersEmpty(t *testing.T) {
	s := testSubspace([]int{0})
	if got := s.Clusters(); len(got) != 0 {
		t.Errorf("expected no clusters, got %d", len(got))
	}
}
