// Package reconcile matches a collector's owned miniatures against the models a roster requires.
//
// Ownership is ambiguous: one miniature may stand in for several requirements
// (by name, unit or catalogue). The engine builds a weighted bipartite graph
// between owned and required instances and takes a maximum-weight matching
// from the matching package.
//
// # Pipeline
//
// A reconciliation runs four stages in sequence, each feeding the next:
//
//  1. Expansion: stacked records (Amount = n) become n singletons (ExpandRequired, ExpandOwned).
//  2. Candidates: every admissible (owned, required) pair is scored (Candidates).
//     Specificity = BaseSpecificity + FieldBonus per exactly matched field
//     (catalogue, unit, name); the edge weight subtracts the number of
//     requirements the owned instance could serve, so unambiguous miniatures
//     are preferred on their unique target.
//  3. Matching: matching.MaxWeight picks the optimal node-disjoint edge set.
//  4. Assembly: matches in required-instance order; unmatched requirements
//     and unused miniatures are re-stacked (StackRequired, StackOwned).
//
// # Guarantees
//
//   - Conservation: len(Matches) + Σ Missing.Amount == Σ required Amount.
//   - No owned or required instance appears twice.
//   - Identical inputs yield identical reports.
//   - A negative amount fails the whole call with ErrInvalidAmount.
//   - Empty inputs are not errors.
//
// # Usage
//
//	report, err := reconcile.Reconcile(required, owned)
//
//	// or, with collaborators
//	report, err := reconcile.ReconcileFrom(ctx, "my-list", rosterProvider, collectionRepo)
package reconcile
