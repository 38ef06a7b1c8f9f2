package matching

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// MaxEdgeWeight bounds edge weights so that path gains cannot overflow int64.
const MaxEdgeWeight int64 = 1 << 40

// unreachable marks labels no alternating path has reached yet.
const unreachable = math.MinInt64 / 4

var errUnstable = errors.New("matching: alternating graph did not converge")

// graph is the index form of an edge list: nodes are dense integers and
// shadowed parallel edges are dropped from order.
type graph struct {
	left   []int
	right  []int
	weight []int64
	order  []int
	nLeft  int
	nRight int
}

// MaxWeight returns a matching of maximum total weight over the given edges.
//
// Every weight must lie in [1, MaxEdgeWeight]. When L or R is an interface type,
// all identifiers on that side must share one non-nil comparable dynamic type.
// Violations fail with an error wrapping ErrInvalidArgument.
//
// An empty edge list yields an empty matching. Parallel edges between the same
// pair of nodes are allowed; only the heaviest (first on ties) can be chosen.
func MaxWeight[L, R comparable](edges []Edge[L, R]) (*Result[L, R], error) {
	g, err := index(edges)
	if err != nil {
		return nil, err
	}

	matchL := fill(g.nLeft, -1)
	matchR := fill(g.nRight, -1)

	for k := 0; k < g.nLeft && k < g.nRight; k++ {
		end, gain, predR, err := g.bestPath(matchL, matchR)
		if err != nil {
			return nil, err
		}
		if end < 0 || gain <= 0 {
			break
		}
		if err := g.augment(end, predR, matchL, matchR); err != nil {
			return nil, err
		}
	}

	chosen := make([]bool, len(edges))
	for _, e := range matchL {
		if e >= 0 {
			chosen[e] = true
		}
	}

	res := &Result[L, R]{}
	for i, ok := range chosen {
		if !ok {
			continue
		}
		res.Pairs = append(res.Pairs, edges[i])
		res.Indices = append(res.Indices, i)
		res.TotalWeight += edges[i].Weight
	}
	return res, nil
}

// index validates the edge list and assigns node indices by first appearance.
func index[L, R comparable](edges []Edge[L, R]) (*graph, error) {
	g := &graph{
		left:   make([]int, len(edges)),
		right:  make([]int, len(edges)),
		weight: make([]int64, len(edges)),
		order:  make([]int, 0, len(edges)),
	}

	leftIdx := make(map[L]int)
	rightIdx := make(map[R]int)
	var leftType, rightType reflect.Type

	// strongest edge seen so far per (left, right) pair
	strongest := make(map[[2]int]int)

	for i, e := range edges {
		if e.Weight <= 0 || e.Weight > MaxEdgeWeight {
			return nil, WeightError{Index: i, Weight: e.Weight}
		}
		if err := checkIdentifier(any(e.Left), &leftType); err != nil {
			return nil, fmt.Errorf("%w: edge %d left: %s", ErrInvalidArgument, i, err)
		}
		if err := checkIdentifier(any(e.Right), &rightType); err != nil {
			return nil, fmt.Errorf("%w: edge %d right: %s", ErrInvalidArgument, i, err)
		}

		l, ok := leftIdx[e.Left]
		if !ok {
			l = len(leftIdx)
			leftIdx[e.Left] = l
		}
		r, ok := rightIdx[e.Right]
		if !ok {
			r = len(rightIdx)
			rightIdx[e.Right] = r
		}
		g.left[i], g.right[i], g.weight[i] = l, r, e.Weight

		key := [2]int{l, r}
		if prev, seen := strongest[key]; seen && g.weight[prev] >= e.Weight {
			continue
		}
		strongest[key] = i
	}

	for i := range edges {
		if strongest[[2]int{g.left[i], g.right[i]}] == i {
			g.order = append(g.order, i)
		}
	}
	g.nLeft, g.nRight = len(leftIdx), len(rightIdx)
	return g, nil
}

// checkIdentifier rejects nil, incomparable and mixed dynamic identifier types.
// For concrete type parameters the dynamic type is always the static one.
func checkIdentifier(id any, want *reflect.Type) error {
	t := reflect.TypeOf(id)
	if t == nil {
		return errors.New("nil identifier")
	}
	if !t.Comparable() {
		return fmt.Errorf("identifier type %s is not comparable", t)
	}
	if *want == nil {
		*want = t
		return nil
	}
	if *want != t {
		return fmt.Errorf("identifier type %s mixed with %s", t, *want)
	}
	return nil
}

// bestPath labels every node with the best gain of an alternating path from a
// free left node and returns the free right node with the highest positive label.
// predR[r] is the edge that last improved r.
func (g *graph) bestPath(matchL, matchR []int) (end int, gain int64, predR []int, err error) {
	distL := make([]int64, g.nLeft)
	for l := range distL {
		if matchL[l] >= 0 {
			distL[l] = unreachable
		}
	}
	distR := make([]int64, g.nRight)
	predR = fill(g.nRight, -1)
	for r := range distR {
		distR[r] = unreachable
	}

	converged := false
	for round := 0; round <= g.nLeft+g.nRight; round++ {
		changed := false
		for _, e := range g.order {
			l, r := g.left[e], g.right[e]
			if matchL[l] == e || distL[l] == unreachable {
				continue
			}
			cand := distL[l] + g.weight[e]
			if cand <= distR[r] {
				continue
			}
			distR[r] = cand
			predR[r] = e
			changed = true
			// a matched right node can only be left through its matched edge
			if m := matchR[r]; m >= 0 {
				distL[g.left[m]] = cand - g.weight[m]
			}
		}
		if !changed {
			converged = true
			break
		}
	}
	if !converged {
		return -1, 0, nil, errUnstable
	}

	end = -1
	for r := range distR {
		if matchR[r] >= 0 || distR[r] == unreachable {
			continue
		}
		if end < 0 || distR[r] > distR[end] {
			end = r
		}
	}
	if end < 0 {
		return -1, 0, predR, nil
	}
	return end, distR[end], predR, nil
}

// augment flips the alternating path ending at the free right node r.
func (g *graph) augment(r int, predR, matchL, matchR []int) error {
	for steps := 0; steps <= g.nLeft+g.nRight; steps++ {
		e := predR[r]
		if e < 0 {
			return errUnstable
		}
		l := g.left[e]
		prev := matchL[l]
		matchL[l] = e
		matchR[r] = e
		if prev < 0 {
			return nil
		}
		r = g.right[prev]
	}
	return errUnstable
}

func fill(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}
