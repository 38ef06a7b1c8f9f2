package reconcile

import "errors"

// ErrInvalidAmount is returned when a record carries a negative or non-integer amount.
// The whole reconciliation fails; no partial report is produced.
var ErrInvalidAmount = errors.New("reconcile: invalid amount")

// ErrTooManyInstances is returned when either side expands past MaxInstances.
var ErrTooManyInstances = errors.New("reconcile: too many instances")

// MaxInstances is the hard cap on expanded instances per side. It keeps the
// running totals far from int overflow and every edge weight positive.
const MaxInstances = 100_000

// RequiredModel is a physical model a roster requires.
type RequiredModel struct {
	// Name is the model name.
	Name string `json:"name" yaml:"name"`

	// Unit is the display name of the owning unit, if known.
	Unit *string `json:"unit,omitempty" yaml:"unit,omitempty"`

	// Catalogue is the name of the owning book, if known.
	Catalogue *string `json:"catalogue,omitempty" yaml:"catalogue,omitempty"`

	// Amount is the number of identical models required.
	Amount int `json:"amount" yaml:"amount"`
}

// MatchCriterion describes one way an owned item can satisfy a requirement.
// A nil Unit or Catalogue is a wildcard; a present one must equal the
// requirement's field exactly. An empty Name matches every name.
type MatchCriterion struct {
	Name      string  `json:"name,omitempty" yaml:"name,omitempty"`
	Unit      *string `json:"unit,omitempty" yaml:"unit,omitempty"`
	Catalogue *string `json:"catalogue,omitempty" yaml:"catalogue,omitempty"`
}

// OwnedItem is a stack of identical owned miniatures.
type OwnedItem struct {
	// Name is the collector's label for the miniature.
	Name string `json:"name" yaml:"name"`

	// Description is free text.
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`

	// Amount is the number of identical miniatures owned.
	Amount int `json:"amount" yaml:"amount"`

	// Painted is the paint state, if recorded.
	Painted *bool `json:"painted,omitempty" yaml:"painted,omitempty"`

	// Criteria are alternatives: each miniature satisfies any one of them.
	// An item without criteria never matches.
	Criteria []MatchCriterion `json:"criteria" yaml:"criteria"`
}

// Match pairs one required model with the owned miniature assigned to it.
// Both sides are singletons (Amount == 1).
type Match struct {
	Required RequiredModel `json:"required"`
	Owned    OwnedItem     `json:"owned"`
}

// Report is the outcome of a reconciliation.
type Report struct {
	// Matches lists satisfied requirements in required-instance order.
	Matches []Match `json:"matches"`

	// Missing stacks the requirements no owned miniature could satisfy.
	Missing []RequiredModel `json:"missing"`

	// Spare stacks the owned miniatures left unassigned.
	Spare []OwnedItem `json:"spare"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate counts for a report, in instances.
type Summary struct {
	Required int `json:"required"`
	Owned    int `json:"owned"`
	Matched  int `json:"matched"`
	Missing  int `json:"missing"`
	Spare    int `json:"spare"`
}
