package clique

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/go-logr/logr"
)

// Config controls CLIQUE clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Xsi is the number of equal-width intervals each dimension is split into.
	// Larger values find smaller, tighter clusters but need more points per
	// cell to stay dense. Must be >= 1. Default: 10.
	Xsi int

	// Tau is the density threshold: a unit is dense when it contains at least
	// this fraction of all points. Must satisfy 0 < Tau < 1. Default: 0.01.
	Tau float64

	// Prune enables minimum description length pruning of each level's
	// subspaces. Only subspaces with large coverage survive to the next level.
	// Default: false.
	Prune bool

	// Workers controls the number of goroutines for the per-dimension grid
	// scan, the pairwise joins and cluster extraction. 0 means use
	// runtime.NumCPU(); 1 runs everything sequentially. Output does not depend
	// on this value. Default: 0 (auto).
	Workers int

	// Logger receives per-level progress at V(1) and per-subspace detail at
	// V(2). The zero value discards everything.
	Logger logr.Logger
}

// Point is one input feature vector with a caller-chosen identifier.
type Point struct {
	ID     int
	Vector []float64
}

// SubspaceCluster is a connected group of dense units in one subspace.
type SubspaceCluster struct {
	// Dims are the dimension indices of the subspace, ascending.
	Dims []int

	// IDs are the identifiers of the member points, ascending. The slice is
	// owned by the cluster.
	IDs []int
}

// LevelStats summarizes one dimensionality level of the search.
type LevelStats struct {
	Dimensionality int
	// Candidates is the number of dense subspaces found before pruning.
	Candidates int
	// Retained is the number of subspaces kept after pruning.
	Retained int
	Clusters int
}

// Result contains the output of CLIQUE clustering.
type Result struct {
	// Clusters in level order: all 1-dimensional clusters first, then
	// 2-dimensional ones, and so on. Within a level, clusters follow their
	// subspaces in descending coverage order.
	Clusters []SubspaceCluster

	// Subspaces[k-1] holds the retained dense subspaces of dimensionality k,
	// sorted by descending coverage. Subspaces are immutable.
	Subspaces [][]*Subspace

	// Levels has one entry per searched dimensionality.
	Levels []LevelStats

	// Total is the number of input points.
	Total int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Xsi: 10,
		Tau: 0.01,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Xsi < 1 {
		return fmt.Errorf("%w: Xsi must be >= 1, got %d", ErrInvalidConfig, cfg.Xsi)
	}
	if math.IsNaN(cfg.Tau) || cfg.Tau <= 0 || cfg.Tau >= 1 {
		return fmt.Errorf("%w: Tau must be in (0, 1), got %f", ErrInvalidConfig, cfg.Tau)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0 (0 means runtime.NumCPU), got %d", ErrInvalidConfig, cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger.GetSink() == nil {
		cfg.Logger = logr.Discard()
	}
}

// Cluster performs CLIQUE clustering on the given data.
// Each element is a point (float64 slice); all points must have the same
// dimensionality. Point identifiers are the row indices of data.
func Cluster(data [][]float64, cfg Config) (*Result, error) {
	points := make([]Point, len(data))
	for i, row := range data {
		points[i] = Point{ID: i, Vector: row}
	}
	return Run(context.Background(), points, cfg)
}

// Run performs CLIQUE clustering on points with caller-chosen identifiers.
// Identifiers must be unique and all vectors must have the same length.
// Returns an error wrapping ErrInvalidConfig if cfg is invalid, and ctx.Err()
// if ctx is cancelled before the run completes.
func Run(ctx context.Context, points []Point, cfg Config) (*Result, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := validatePoints(points); err != nil {
		return nil, err
	}

	e := &engine{cfg: cfg, log: cfg.Logger.WithName("clique"), points: points}
	return e.run(ctx)
}

// validatePoints checks that all vectors have equal length and ids are unique.
func validatePoints(points []Point) error {
	if len(points) == 0 {
		return nil
	}
	dims := len(points[0].Vector)
	seen := make(map[int]struct{}, len(points))
	for i, p := range points {
		if len(p.Vector) != dims {
			return fmt.Errorf("%w: point %d (id %d) has %d dimensions, want %d",
				ErrDimensionMismatch, i, p.ID, len(p.Vector), dims)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
