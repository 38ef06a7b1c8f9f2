// Package matching computes maximum-weight matchings on bipartite graphs.
//
// The graph is given as a flat list of weighted edges between left nodes of
// type L and right nodes of type R. Nodes exist only through the edges that
// reference them; an isolated node is simply absent.
//
// # Algorithm
//
// MaxWeight grows the matching one augmenting path at a time. Each phase runs a
// Bellman–Ford longest-path pass over the alternating residual graph (unmatched
// edges traversed left→right add their weight, matched edges traversed
// right→left subtract it) and augments along the path of maximum gain that
// ends at a free right node. The best matching of size k+1 is the best matching
// of size k improved by that path, and the gains are non-increasing, so the
// solver stops at the first phase whose best gain is not positive.
//
// Complexity: O(min(|L|,|R|) · (|L|+|R|) · |E|)
// Memory:     O(|L| + |R| + |E|)
//
// # Determinism
//
// Ties are resolved by input order only:
//   - node indices follow first appearance in the edge list;
//   - edges are relaxed in input order and a label is replaced only on strict improvement;
//   - among free right nodes with equal best gain the one seen first is augmented.
//
// The same edge list therefore always yields the same matching.
//
// # Usage
//
//	res, err := matching.MaxWeight([]matching.Edge[string, string]{
//	    {Left: "a", Right: "x", Weight: 3},
//	    {Left: "b", Right: "x", Weight: 2},
//	})
//	// res.Pairs == [{a x 3}]
package matching
