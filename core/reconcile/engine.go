package reconcile

import (
	"fmt"

	"figurine-manager/core/matching"
)

// Reconcile assigns owned miniatures to required models so that the total
// match specificity is maximal, and reports what is matched, missing and spare.
//
// Both inputs are expanded to singletons, every admissible pair becomes a
// weighted edge, and the optimum is computed exactly. The call is pure: it
// performs no I/O and keeps no state, so it is safe for concurrent use.
// Identical inputs always produce an identical report.
func Reconcile(required []RequiredModel, owned []OwnedItem) (*Report, error) {
	req, err := ExpandRequired(required)
	if err != nil {
		return nil, err
	}
	own, err := ExpandOwned(owned)
	if err != nil {
		return nil, err
	}

	candidates := Candidates(req, own)
	edges := make([]matching.Edge[int, int], len(candidates))
	for i, c := range candidates {
		edges[i] = matching.Edge[int, int]{Left: c.Owned, Right: c.Required, Weight: c.Weight}
	}

	res, err := matching.MaxWeight(edges)
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}

	return assemble(req, own, res.Pairs), nil
}

// assemble translates the matching back into domain records.
func assemble(req []RequiredModel, own []OwnedItem, pairs []matching.Edge[int, int]) *Report {
	ownerOf := make([]int, len(req))
	for i := range ownerOf {
		ownerOf[i] = -1
	}
	used := make([]bool, len(own))
	for _, p := range pairs {
		ownerOf[p.Right] = p.Left
		used[p.Left] = true
	}

	report := &Report{Matches: []Match{}}
	var missing []RequiredModel
	for i, r := range req {
		if o := ownerOf[i]; o >= 0 {
			report.Matches = append(report.Matches, Match{Required: r, Owned: own[o]})
			continue
		}
		missing = append(missing, r)
	}

	var spare []OwnedItem
	for i, o := range own {
		if !used[i] {
			spare = append(spare, o)
		}
	}

	report.Missing = StackRequired(missing)
	report.Spare = StackOwned(spare)
	report.Summary = Summary{
		Required: len(req),
		Owned:    len(own),
		Matched:  len(report.Matches),
		Missing:  len(missing),
		Spare:    len(spare),
	}
	return report
}
