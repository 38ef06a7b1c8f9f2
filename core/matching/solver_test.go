package matching_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"figurine-manager/core/matching"
)

// MaxWeightSuite groups tests for the bipartite matching solver.
type MaxWeightSuite struct {
	suite.Suite
}

func TestMaxWeightSuite(t *testing.T) {
	suite.Run(t, new(MaxWeightSuite))
}

type strEdge = matching.Edge[string, string]

// TestEmpty: no edges => empty matching.
func (s *MaxWeightSuite) TestEmpty() {
	res, err := matching.MaxWeight[string, string](nil)
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Len())
	require.Zero(s.T(), res.TotalWeight)
}

// TestSingleEdge: a lone edge is always taken.
func (s *MaxWeightSuite) TestSingleEdge() {
	res, err := matching.MaxWeight([]strEdge{{Left: "a", Right: "x", Weight: 7}})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []strEdge{{Left: "a", Right: "x", Weight: 7}}, res.Pairs)
	require.Equal(s.T(), []int{0}, res.Indices)
	require.Equal(s.T(), int64(7), res.TotalWeight)
}

// TestContestedNode: greedy would take a–x (5) and strand b; the optimum is a–y + b–x.
func (s *MaxWeightSuite) TestContestedNode() {
	edges := []strEdge{
		{Left: "a", Right: "x", Weight: 5},
		{Left: "a", Right: "y", Weight: 4},
		{Left: "b", Right: "x", Weight: 4},
	}
	res, err := matching.MaxWeight(edges)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(8), res.TotalWeight)
	require.Equal(s.T(), []int{1, 2}, res.Indices, "pairs are reported in input order")
}

// TestHeavierSmallerMatching: one heavy edge beats two light ones.
func (s *MaxWeightSuite) TestHeavierSmallerMatching() {
	edges := []strEdge{
		{Left: "a", Right: "x", Weight: 10},
		{Left: "a", Right: "y", Weight: 3},
		{Left: "b", Right: "x", Weight: 3},
	}
	res, err := matching.MaxWeight(edges)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(10), res.TotalWeight)
	require.Equal(s.T(), []int{0}, res.Indices)
}

// TestLongAugmentingPath forces a path that re-routes two existing pairs.
func (s *MaxWeightSuite) TestLongAugmentingPath() {
	edges := []strEdge{
		{Left: "a", Right: "x", Weight: 10},
		{Left: "b", Right: "y", Weight: 10},
		{Left: "a", Right: "y", Weight: 9},
		{Left: "b", Right: "z", Weight: 9},
		{Left: "c", Right: "x", Weight: 9},
	}
	res, err := matching.MaxWeight(edges)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(27), res.TotalWeight)
	require.Equal(s.T(), []int{2, 3, 4}, res.Indices)
}

// TestTieBreakFirstEdge: equal optima resolve to the edge seen first.
func (s *MaxWeightSuite) TestTieBreakFirstEdge() {
	edges := []strEdge{
		{Left: "a", Right: "x", Weight: 5},
		{Left: "a", Right: "y", Weight: 5},
	}
	res, err := matching.MaxWeight(edges)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0}, res.Indices)

	// reversing the input flips the choice
	res, err = matching.MaxWeight([]strEdge{edges[1], edges[0]})
	require.NoError(s.T(), err)
	require.Equal(s.T(), "y", res.Pairs[0].Right)
}

// TestParallelEdges: only the heaviest parallel edge can be chosen.
func (s *MaxWeightSuite) TestParallelEdges() {
	edges := []strEdge{
		{Left: "a", Right: "x", Weight: 2},
		{Left: "a", Right: "x", Weight: 6},
		{Left: "a", Right: "x", Weight: 6},
	}
	res, err := matching.MaxWeight(edges)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{1}, res.Indices)
}

// TestInvalidWeight: zero, negative and oversized weights are rejected.
func (s *MaxWeightSuite) TestInvalidWeight() {
	for _, w := range []int64{0, -3, matching.MaxEdgeWeight + 1} {
		_, err := matching.MaxWeight([]strEdge{
			{Left: "a", Right: "x", Weight: 1},
			{Left: "b", Right: "y", Weight: w},
		})
		require.ErrorIs(s.T(), err, matching.ErrInvalidArgument)
		var we matching.WeightError
		require.True(s.T(), errors.As(err, &we))
		require.Equal(s.T(), 1, we.Index)
		require.Equal(s.T(), w, we.Weight)
	}
}

// TestMixedIdentifierTypes: interface-typed identifiers must be homogeneous.
func (s *MaxWeightSuite) TestMixedIdentifierTypes() {
	_, err := matching.MaxWeight([]matching.Edge[any, any]{
		{Left: 1, Right: "x", Weight: 1},
		{Left: "2", Right: "y", Weight: 1},
	})
	require.ErrorIs(s.T(), err, matching.ErrInvalidArgument)

	_, err = matching.MaxWeight([]matching.Edge[any, any]{
		{Left: 1, Right: "x", Weight: 1},
		{Left: 2, Right: 3, Weight: 1},
	})
	require.ErrorIs(s.T(), err, matching.ErrInvalidArgument)
}

// TestNilAndIncomparableIdentifiers are rejected before any map access.
func (s *MaxWeightSuite) TestNilAndIncomparableIdentifiers() {
	_, err := matching.MaxWeight([]matching.Edge[any, any]{{Left: nil, Right: "x", Weight: 1}})
	require.ErrorIs(s.T(), err, matching.ErrInvalidArgument)

	_, err = matching.MaxWeight([]matching.Edge[any, any]{{Left: []int{1}, Right: "x", Weight: 1}})
	require.ErrorIs(s.T(), err, matching.ErrInvalidArgument)
}

// TestHomogeneousInterfaceIdentifiers are accepted.
func (s *MaxWeightSuite) TestHomogeneousInterfaceIdentifiers() {
	res, err := matching.MaxWeight([]matching.Edge[any, any]{
		{Left: 1, Right: "x", Weight: 2},
		{Left: 2, Right: "x", Weight: 3},
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{1}, res.Indices)
}

// TestDeterminism: repeated calls agree exactly.
func (s *MaxWeightSuite) TestDeterminism() {
	rng := rand.New(rand.NewSource(7))
	edges := randomEdges(rng, 8, 8, 30, 5)
	first, err := matching.MaxWeight(edges)
	require.NoError(s.T(), err)
	for i := 0; i < 10; i++ {
		again, err := matching.MaxWeight(edges)
		require.NoError(s.T(), err)
		require.Equal(s.T(), first, again)
	}
}

// TestMatchesBruteForce compares against exhaustive search on small graphs,
// including graphs with many equal weights.
func (s *MaxWeightSuite) TestMatchesBruteForce() {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 300; trial++ {
		maxW := int64(1 + trial%9)
		edges := randomEdges(rng, 1+rng.Intn(5), 1+rng.Intn(5), 1+rng.Intn(12), maxW)

		res, err := matching.MaxWeight(edges)
		require.NoError(s.T(), err)
		require.Equal(s.T(), bruteForce(edges), res.TotalWeight, "trial %d: %v", trial, edges)
		requireDisjoint(s.T(), res.Pairs)
	}
}

func randomEdges(rng *rand.Rand, nl, nr, m int, maxW int64) []matching.Edge[int, int] {
	edges := make([]matching.Edge[int, int], m)
	for i := range edges {
		edges[i] = matching.Edge[int, int]{
			Left:   rng.Intn(nl),
			Right:  rng.Intn(nr),
			Weight: 1 + rng.Int63n(maxW),
		}
	}
	return edges
}

func bruteForce(edges []matching.Edge[int, int]) int64 {
	var best int64
	for mask := 0; mask < 1<<len(edges); mask++ {
		usedL := map[int]bool{}
		usedR := map[int]bool{}
		var total int64
		ok := true
		for i, e := range edges {
			if mask&(1<<i) == 0 {
				continue
			}
			if usedL[e.Left] || usedR[e.Right] {
				ok = false
				break
			}
			usedL[e.Left], usedR[e.Right] = true, true
			total += e.Weight
		}
		if ok && total > best {
			best = total
		}
	}
	return best
}

func requireDisjoint[L, R comparable](t *testing.T, pairs []matching.Edge[L, R]) {
	usedL := map[L]bool{}
	usedR := map[R]bool{}
	for _, p := range pairs {
		require.False(t, usedL[p.Left], "left %v reused", p.Left)
		require.False(t, usedR[p.Right], "right %v reused", p.Right)
		usedL[p.Left], usedR[p.Right] = true, true
	}
}
