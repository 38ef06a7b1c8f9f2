package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"figurine-manager/core/reconcile"
	"figurine-manager/core/utils"
	"figurine-manager/feature/roster/models"

	"github.com/Masterminds/semver/v3"
)

var (
	// ErrNotFound is returned when no roster document exists for a key.
	ErrNotFound = errors.New("roster: not found")

	// ErrUnsupportedSchema is returned for documents outside the supported schema range.
	ErrUnsupportedSchema = errors.New("roster: unsupported schema version")

	// ErrInvalidKey is returned for keys that would escape the roster folder.
	ErrInvalidKey = errors.New("roster: invalid key")
)

// SupportedSchema is the range of schema versions this build can read.
const SupportedSchema = ">= 1.0.0, < 2.0.0"

var supportedSchema = mustConstraint(SupportedSchema)

func mustConstraint(raw string) *semver.Constraints {
	c, err := semver.NewConstraint(raw)
	if err != nil {
		panic(fmt.Sprintf("roster: parse constraint %q: %v", raw, err))
	}
	return c
}

// ValidateKey rejects empty keys and keys containing path separators.
func ValidateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// Parse decodes a roster document and checks its schema version and counts.
// A document counting more than reconcile.MaxInstances models in total is
// rejected with reconcile.ErrTooManyInstances.
func Parse(data []byte) (*models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", reconcile.ErrInvalidDocument, err)
	}
	if err := CheckSchema(doc.SchemaVersion); err != nil {
		return nil, err
	}
	total := 0
	for _, force := range doc.Forces {
		for _, unit := range force.Units {
			for _, m := range unit.Models {
				if m.Count < 0 {
					return nil, fmt.Errorf("%w: model %s of unit %s has count %d",
						reconcile.ErrInvalidAmount, m.Name, unit.Name, m.Count)
				}
				if m.Count > reconcile.MaxInstances-total {
					return nil, fmt.Errorf("%w: roster counts more than %d models",
						reconcile.ErrTooManyInstances, reconcile.MaxInstances)
				}
				total += m.Count
			}
		}
	}
	return &doc, nil
}

// CheckSchema reports whether version falls in SupportedSchema.
func CheckSchema(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedSchema, version, err)
	}
	if !supportedSchema.Check(v) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedSchema, v, SupportedSchema)
	}
	return nil
}

// Models lists the physical models of every enabled unit: one record with
// Amount 1 per counted model, tagged with the unit name and force catalogue.
func Models(doc *models.Document) []reconcile.RequiredModel {
	out := []reconcile.RequiredModel{}
	for _, force := range doc.Forces {
		catalogue := utils.OptString(force.Catalogue)
		for _, unit := range force.Units {
			if unit.Disabled {
				continue
			}
			unitName := utils.OptString(unit.Name)
			for _, m := range unit.Models {
				for i := 0; i < m.Count; i++ {
					out = append(out, reconcile.RequiredModel{
						Name:      m.Name,
						Unit:      unitName,
						Catalogue: catalogue,
						Amount:    1,
					})
				}
			}
		}
	}
	return out
}

// Summarize counts the forces, enabled units and physical models of a roster.
func Summarize(key string, doc *models.Document) models.Summary {
	s := models.Summary{
		Key:        key,
		Name:       doc.Name,
		GameSystem: doc.GameSystem,
		Forces:     len(doc.Forces),
	}
	for _, force := range doc.Forces {
		for _, unit := range force.Units {
			if unit.Disabled {
				continue
			}
			s.Units++
			for _, m := range unit.Models {
				s.Models += m.Count
			}
		}
	}
	return s
}
