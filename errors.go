package clique

import "errors"

var (
	// ErrInvalidConfig is wrapped by every configuration validation error.
	ErrInvalidConfig = errors.New("clique: invalid config")

	// ErrDimensionMismatch reports input vectors of differing length.
	ErrDimensionMismatch = errors.New("clique: dimension mismatch")

	// ErrDuplicateID reports two input points sharing an identifier.
	ErrDuplicateID = errors.New("clique: duplicate point id")

	// ErrIncompatibleSubspaces reports a join between subspaces of different
	// dimensionality. It indicates a caller bug, not a data problem.
	ErrIncompatibleSubspaces = errors.New("clique: incompatible subspaces")
)
