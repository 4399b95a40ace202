// Package clique implements CLIQUE, a grid-based subspace clustering
// algorithm (Agrawal, Gehrke, Gunopulos, Raghavan, SIGMOD 1998).
//
// CLIQUE partitions every dimension into Xsi equal-width intervals. A grid
// cell (a unit) is dense when it holds at least a Tau fraction of all points.
// Dense one-dimensional units are grouped per dimension into subspaces, and
// k-dimensional subspaces are generated bottom-up by joining pairs of
// (k-1)-dimensional subspaces that share all but their last dimension. The
// search stops when a level produces no dense subspace. Clusters are the
// connected components of adjacent dense units within each subspace.
//
// Basic usage:
//
//	cfg := clique.DefaultConfig()
//	cfg.Xsi = 10
//	cfg.Tau = 0.1
//	result, err := clique.Cluster(data, cfg)
//	for _, c := range result.Clusters {
//		// c.Dims is the subspace, c.IDs the member row indices
//	}
//
// Points with caller-chosen identifiers go through [Run]:
//
//	result, err := clique.Run(ctx, points, cfg)
//
// # Pruning
//
// With Config.Prune set, every level's subspace list (sorted by coverage) is
// cut with a minimum description length heuristic, keeping only the
// high-coverage prefix. This keeps the search tractable on data with many
// dimensions at the cost of possibly missing clusters in low-coverage
// subspaces.
package clique
