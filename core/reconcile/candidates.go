package reconcile

const (
	// BaseSpecificity is the score of a criterion that only uses wildcards.
	BaseSpecificity int64 = 1_000_000

	// FieldBonus is added for every present criterion field that equals the requirement's.
	FieldBonus int64 = 10_000
)

// Candidate is an admissible (owned instance, required instance) pair.
// Owned and Required index the expanded instance sequences.
type Candidate struct {
	Owned       int   `json:"owned"`
	Required    int   `json:"required"`
	Specificity int64 `json:"specificity"`
	Ambiguity   int   `json:"ambiguity"`
	Weight      int64 `json:"weight"`
}

// Explanation exposes the matching graph built for a reconciliation.
type Explanation struct {
	Required   []RequiredModel `json:"required"`
	Owned      []OwnedItem     `json:"owned"`
	Candidates []Candidate     `json:"candidates"`
}

// Explain expands both inputs and scores every admissible pair, without solving.
func Explain(required []RequiredModel, owned []OwnedItem) (*Explanation, error) {
	req, err := ExpandRequired(required)
	if err != nil {
		return nil, err
	}
	own, err := ExpandOwned(owned)
	if err != nil {
		return nil, err
	}
	return &Explanation{Required: req, Owned: own, Candidates: Candidates(req, own)}, nil
}

// Candidates scores every admissible pair of singleton instances, owned-major,
// required-minor. Weight is the best specificity over the item's criteria minus
// the number of required instances the owned instance is admissible for, floored
// at 1. Expanded inputs stay under MaxInstances, well below BaseSpecificity, so
// the floor only applies to direct calls with larger sequences.
func Candidates(required []RequiredModel, owned []OwnedItem) []Candidate {
	var out []Candidate
	for o := range owned {
		first := len(out)
		for r := range required {
			spec, ok := bestSpecificity(owned[o].Criteria, &required[r])
			if !ok {
				continue
			}
			out = append(out, Candidate{Owned: o, Required: r, Specificity: spec})
		}

		ambiguity := len(out) - first
		for i := first; i < len(out); i++ {
			out[i].Ambiguity = ambiguity
			out[i].Weight = max(out[i].Specificity-int64(ambiguity), 1)
		}
	}
	return out
}

// Admissible reports whether c accepts r and, if so, its specificity.
// An empty criterion Name accepts any name without a bonus.
func Admissible(c MatchCriterion, r *RequiredModel) (int64, bool) {
	score := BaseSpecificity
	if c.Catalogue != nil {
		if r.Catalogue == nil || *c.Catalogue != *r.Catalogue {
			return 0, false
		}
		score += FieldBonus
	}
	if c.Unit != nil {
		if r.Unit == nil || *c.Unit != *r.Unit {
			return 0, false
		}
		score += FieldBonus
	}
	if c.Name != "" {
		if c.Name != r.Name {
			return 0, false
		}
		score += FieldBonus
	}
	return score, true
}

func bestSpecificity(criteria []MatchCriterion, r *RequiredModel) (int64, bool) {
	var best int64
	found := false
	for _, c := range criteria {
		if s, ok := Admissible(c, r); ok && s > best {
			best, found = s, true
		}
	}
	return best, found
}
