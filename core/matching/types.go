package matching

import "fmt"

// ErrInvalidArgument is returned when the solver input cannot form a bipartite graph
// with positive weights and homogeneous, comparable node identifiers.
var ErrInvalidArgument = fmt.Errorf("matching: %w", errInvalidArgument)
var errInvalidArgument = fmt.Errorf("invalid argument")

// WeightError is returned when an edge carries a non-positive weight.
// It wraps ErrInvalidArgument.
type WeightError struct {
	Index  int
	Weight int64
}

func (e WeightError) Error() string {
	return fmt.Sprintf("matching: edge %d has non-positive weight %d", e.Index, e.Weight)
}

func (e WeightError) Unwrap() error {
	return ErrInvalidArgument
}

// Edge connects a left node to a right node with a strictly positive weight.
type Edge[L, R comparable] struct {
	Left   L
	Right  R
	Weight int64
}

// Result is a maximum-weight matching.
//   - Pairs: the chosen edges, in the order they appeared in the input.
//   - Indices: the input position of each chosen edge, parallel to Pairs.
//   - TotalWeight: sum of the chosen edge weights.
type Result[L, R comparable] struct {
	Pairs       []Edge[L, R]
	Indices     []int
	TotalWeight int64
}

// Len reports the number of matched pairs.
func (r *Result[L, R]) Len() int {
	return len(r.Pairs)
}
