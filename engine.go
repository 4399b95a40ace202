package clique

import (
	"context"

	"github.com/go-logr/logr"
)

// engine holds the state of one CLIQUE run.
type engine struct {
	cfg    Config
	log    logr.Logger
	points []Point
}

// run performs the level-wise search for dense subspaces and then extracts
// the clusters of every retained subspace.
func (e *engine) run(ctx context.Context) (*Result, error) {
	total := len(e.points)
	res := &Result{
		Clusters:  []SubspaceCluster{},
		Subspaces: [][]*Subspace{},
		Levels:    []LevelStats{},
		Total:     total,
	}
	if total == 0 || len(e.points[0].Vector) == 0 {
		return res, nil
	}
	dims := len(e.points[0].Vector)

	// Identification of subspaces that contain clusters.
	candidates, err := e.oneDimensionalCandidates(ctx, total)
	if err != nil {
		return nil, err
	}
	dense := e.prune(candidates)
	res.addLevel(1, candidates, dense)
	e.logLevel(1, len(candidates), dense)

	for k := 2; k <= dims && len(dense) > 0; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		candidates, err = e.joinCandidates(ctx, dense, total)
		if err != nil {
			return nil, err
		}
		dense = e.prune(candidates)
		res.addLevel(k, candidates, dense)
		e.logLevel(k, len(candidates), dense)
	}

	// Identification of clusters.
	for k, subspaces := range res.Subspaces {
		clusters, err := e.extractClusters(ctx, subspaces)
		if err != nil {
			return nil, err
		}
		res.Levels[k].Clusters = len(clusters)
		res.Clusters = append(res.Clusters, clusters...)
		e.log.V(1).Info("clusters", "dimensionality", k+1, "count", len(clusters))
	}
	return res, nil
}

func (r *Result) addLevel(k int, candidates, retained []*Subspace) {
	r.Subspaces = append(r.Subspaces, retained)
	r.Levels = append(r.Levels, LevelStats{
		Dimensionality: k,
		Candidates:     len(candidates),
		Retained:       len(retained),
	})
}

func (e *engine) prune(candidates []*Subspace) []*Subspace {
	if !e.cfg.Prune {
		return candidates
	}
	return pruneSubspaces(candidates)
}

func (e *engine) logLevel(k, candidates int, dense []*Subspace) {
	e.log.V(1).Info("dense subspaces", "dimensionality", k, "candidates", candidates, "retained", len(dense))
	if debug := e.log.V(2); debug.Enabled() {
		for _, s := range dense {
			debug.Info("dense subspace", "dims", s.Dims(), "coverage", s.Coverage(), "units", len(s.Units()))
		}
	}
}

// oneDimensionalCandidates scans the points once per dimension and groups the
// dense 1-dimensional units of each dimension into a subspace. The result is
// sorted by descending coverage.
func (e *engine) oneDimensionalCandidates(ctx context.Context, total int) ([]*Subspace, error) {
	g := newGrid(e.points, len(e.points[0].Vector), e.cfg.Xsi)
	units, err := oneDimensionalUnits(ctx, e.points, g, e.cfg.Workers)
	if err != nil {
		return nil, err
	}

	var subspaces []*Subspace
	denseUnits := 0
	for d, row := range units {
		var dense []*Unit
		for _, u := range row {
			if u.dense(total, e.cfg.Tau) {
				dense = append(dense, u)
			}
		}
		if len(dense) > 0 {
			denseUnits += len(dense)
			subspaces = append(subspaces, newSubspace([]int{d}, dense))
		}
	}
	e.log.V(2).Info("1-dimensional units", "total", len(units)*e.cfg.Xsi, "dense", denseUnits)

	sortByCoverage(subspaces)
	return subspaces, nil
}

// joinCandidates joins every pair of (k-1)-dimensional dense subspaces into
// k-dimensional candidates. The result is sorted by descending coverage.
func (e *engine) joinCandidates(ctx context.Context, dense []*Subspace, total int) ([]*Subspace, error) {
	byDims := make([]*Subspace, len(dense))
	copy(byDims, dense)
	sortByDims(byDims)

	type pair struct{ s1, s2 *Subspace }
	var pairs []pair
	for i, s1 := range byDims {
		for _, s2 := range byDims[i+1:] {
			if s1.joinable(s2) {
				pairs = append(pairs, pair{s1, s2})
			}
		}
	}

	joined := make([]*Subspace, len(pairs))
	err := parallelFor(ctx, len(pairs), e.cfg.Workers, func(i int) error {
		s, err := pairs[i].s1.Join(pairs[i].s2, total, e.cfg.Tau)
		joined[i] = s
		return err
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]*Subspace, 0, len(joined))
	for _, s := range joined {
		if s != nil {
			candidates = append(candidates, s)
		}
	}
	sortByCoverage(candidates)
	return candidates, nil
}

// extractClusters returns the clusters of all subspaces in subspace order.
func (e *engine) extractClusters(ctx context.Context, subspaces []*Subspace) ([]SubspaceCluster, error) {
	perSubspace := make([][]SubspaceCluster, len(subspaces))
	err := parallelFor(ctx, len(subspaces), e.cfg.Workers, func(i int) error {
		perSubspace[i] = subspaces[i].Clusters()
		return nil
	})
	if err != nil {
		return nil, err
	}

	var clusters []SubspaceCluster
	for i, cs := range perSubspace {
		e.log.V(2).Info("subspace clusters", "dimensionality", subspaces[i].Dimensionality(),
			"dims", subspaces[i].Dims(), "count", len(cs))
		clusters = append(clusters, cs...)
	}
	return clusters, nil
}
