package clique

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// pruneSubspaces performs the MDL-based pruning of CLIQUE on subspaces sorted
// by descending coverage. Every split point i partitions the list into a kept
// prefix [0, i] and a pruned suffix; the prefix with the smallest total code
// length is returned. On equal code lengths the earliest split wins, so a
// non-empty input always keeps at least one subspace.
func pruneSubspaces(subspaces []*Subspace) []*Subspace {
	if len(subspaces) == 0 {
		return subspaces
	}
	cov := make([]float64, len(subspaces))
	for i, s := range subspaces {
		cov[i] = float64(s.coverage)
	}
	cut := floats.MinIdx(codeLengths(cov))
	return slices.Clip(subspaces[:cut+1])
}

// codeLengths returns, for every split index i of cov, the code length of
// encoding cov[:i+1] and cov[i+1:] each by its mean plus the deviations of its
// members from that mean.
func codeLengths(cov []float64) []float64 {
	cl := make([]float64, len(cov))
	for i := range cov {
		cl[i] = groupCodeLength(cov[:i+1]) + groupCodeLength(cov[i+1:])
	}
	return cl
}

// groupCodeLength encodes one group: log2 of its mean rounded up, plus log2
// of every member's absolute deviation from that mean. An empty group costs 0.
func groupCodeLength(cov []float64) float64 {
	if len(cov) == 0 {
		return 0
	}
	mean := math.Ceil(floats.Sum(cov) / float64(len(cov)))
	cl := log2OrZero(mean)
	for _, c := range cov {
		cl += log2OrZero(math.Abs(c - mean))
	}
	return cl
}

// log2OrZero returns log2(x) for positive x and 0 otherwise.
func log2OrZero(x float64) float64 {
	if x > 0 {
		return math.Log2(x)
	}
	return 0
}
