package clique

import (
	"math"
	"testing"
)

func TestEdgeCase_SinglePoint(t *testing.T) {
	result, err := Cluster([][]float64{{1.0, 2.0}}, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// One point is dense everywhere: two 1-d clusters and one 2-d cluster.
	if len(result.Clusters) != 3 {
		t.Fatalf("expected 3 clusters, got %d", len(result.Clusters))
	}
	for _, c := range result.Clusters {
		if len(c.IDs) != 1 || c.IDs[0] != 0 {
			t.Errorf("cluster %v: ids %v, want [0]", c.Dims, c.IDs)
		}
	}
}

func TestEdgeCase_OneDimensional(t *testing.T) {
	data := [][]float64{{0}, {0.5}, {0.9}, {9.2}, {9.5}, {10}}
	cfg := DefaultConfig()
	cfg.Xsi = 10
	cfg.Tau = 0.3
	result, err := Cluster(data, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Levels) != 1 {
		t.Fatalf("expected only the 1-d level, got %d", len(result.Levels))
	}
	// Bin width is ~1: the low group fills bin 0, the high group bin 9.
	if len(result.Clusters) != 2 {
		t.Fatalf("expected 2 separate clusters, got %d", len(result.Clusters))
	}
	if got := result.Clusters[0].IDs; len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Errorf("first cluster ids: got %v, want [0 1 2]", got)
	}
	if got := result.Clusters[1].IDs; len(got) != 3 || got[0] != 3 || got[2] != 5 {
		t.Errorf("second cluster ids: got %v, want [3 4 5]", got)
	}
}

func TestEdgeCase_ConstantColumn(t *testing.T) {
	data := make([][]float64, 30)
	for i := range data {
		data[i] = []float64{float64(i), 4.2}
	}
	cfg := DefaultConfig()
	cfg.Xsi = 3
	cfg.Tau = 0.2
	result, err := Cluster(data, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var constant *Subspace
	for _, s := range result.Subspaces[0] {
		if s.Dims()[0] == 1 {
			constant = s
		}
	}
	if constant == nil {
		t.Fatal("constant column should form a dense subspace")
	}
	if len(constant.Units()) != 1 || constant.Units()[0].Intervals()[0].Bin != 0 || constant.Coverage() != 30 {
		t.Errorf("constant column: expected all points in bin 0, got %s", constant)
	}
	// Each third of dimension 0 combines with the constant column.
	if len(result.Subspaces) < 2 || len(result.Subspaces[1]) != 1 || len(result.Subspaces[1][0].Units()) != 3 {
		t.Errorf("expected one 2-d subspace with 3 units, got %v", result.Subspaces)
	}
}

func TestEdgeCase_NaNCoordinates(t *testing.T) {
	data := [][]float64{
		{math.NaN(), 1},
		{0, 1},
		{0.2, 1},
		{10, 1},
	}
	cfg := DefaultConfig()
	cfg.Xsi = 2
	cfg.Tau = 0.5
	result, err := Cluster(data, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The NaN point joins the low bin of dimension 0, making it dense.
	found := false
	for _, c := range result.Clusters {
		if len(c.Dims) == 1 && c.Dims[0] == 0 {
			found = true
			if len(c.IDs) != 3 || c.IDs[0] != 0 {
				t.Errorf("dimension 0 cluster: got %v, want [0 1 2]", c.IDs)
			}
		}
	}
	if !found {
		t.Error("expected a cluster in dimension 0")
	}
}

func TestEdgeCase_XsiOne(t *testing.T) {
	data := generateUniformData(40, 3, 1)
	cfg := DefaultConfig()
	cfg.Xsi = 1
	cfg.Tau = 0.5
	result, err := Cluster(data, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A single bin per dimension holds everything: 3 + 3 + 1 subspaces.
	if len(result.Clusters) != 7 {
		t.Fatalf("expected 7 clusters, got %d", len(result.Clusters))
	}
	for _, c := range result.Clusters {
		if len(c.IDs) != 40 {
			t.Errorf("cluster %v: %d ids, want 40", c.Dims, len(c.IDs))
		}
	}
}

func TestEdgeCase_ResultIndependentOfInput(t *testing.T) {
	data := [][]float64{{1, 1}, {1, 1}, {1, 1}}
	result, err := Cluster(data, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data[0][0] = 500
	snapshot := append([]int(nil), result.Clusters[0].IDs...)
	if _, err := Cluster(data, DefaultConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, id := range result.Clusters[0].IDs {
		if snapshot[i] != id {
			t.Error("returned clusters changed after a later run")
		}
	}
}
