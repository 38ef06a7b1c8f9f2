package reconcile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"figurine-manager/core/utils"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned when an input document cannot be parsed.
var ErrInvalidDocument = errors.New("reconcile: invalid document")

// Format is the encoding of an input document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromName picks the format from a file name or content type; JSON is the default.
func FormatFromName(name string) Format {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "yaml"), filepath.Ext(name) == ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Documents carry amounts as loosely typed values so that fractional or
// non-numeric amounts surface as ErrInvalidAmount instead of a decode error.
type rawRequired struct {
	Name      string  `json:"name" yaml:"name"`
	Unit      *string `json:"unit" yaml:"unit"`
	Catalogue *string `json:"catalogue" yaml:"catalogue"`
	Amount    any     `json:"amount" yaml:"amount"`
}

type rawOwned struct {
	Name        string           `json:"name" yaml:"name"`
	Description *string          `json:"description" yaml:"description"`
	Amount      any              `json:"amount" yaml:"amount"`
	Painted     any              `json:"painted" yaml:"painted"`
	Criteria    []MatchCriterion `json:"criteria" yaml:"criteria"`
}

type rawDocument struct {
	Required []rawRequired `json:"required" yaml:"required"`
	Owned    []rawOwned    `json:"owned" yaml:"owned"`
	Items    []rawOwned    `json:"items" yaml:"items"`
}

// DecodeRequired parses required models from a list or a {"required": [...]} document.
// A missing amount means 1.
func DecodeRequired(data []byte, format Format) ([]RequiredModel, error) {
	var raw []rawRequired
	if isList(data, format) {
		if err := unmarshal(data, format, &raw); err != nil {
			return nil, err
		}
	} else {
		var doc rawDocument
		if err := unmarshal(data, format, &doc); err != nil {
			return nil, err
		}
		raw = doc.Required
	}
	return convertRequired(raw)
}

// DecodeOwned parses owned items from a list or an {"items": [...]} / {"owned": [...]} document.
// A missing amount means 1.
func DecodeOwned(data []byte, format Format) ([]OwnedItem, error) {
	var raw []rawOwned
	if isList(data, format) {
		if err := unmarshal(data, format, &raw); err != nil {
			return nil, err
		}
	} else {
		var doc rawDocument
		if err := unmarshal(data, format, &doc); err != nil {
			return nil, err
		}
		raw = append(doc.Items, doc.Owned...)
	}
	return convertOwned(raw)
}

// DecodeRequest parses a {"required": [...], "owned": [...]} document.
func DecodeRequest(data []byte, format Format) ([]RequiredModel, []OwnedItem, error) {
	var doc rawDocument
	if err := unmarshal(data, format, &doc); err != nil {
		return nil, nil, err
	}
	required, err := convertRequired(doc.Required)
	if err != nil {
		return nil, nil, err
	}
	owned, err := convertOwned(doc.Owned)
	if err != nil {
		return nil, nil, err
	}
	return required, owned, nil
}

func convertRequired(raw []rawRequired) ([]RequiredModel, error) {
	out := make([]RequiredModel, len(raw))
	for i, r := range raw {
		n, err := amountOf(r.Amount, i)
		if err != nil {
			return nil, err
		}
		out[i] = RequiredModel{Name: r.Name, Unit: r.Unit, Catalogue: r.Catalogue, Amount: n}
	}
	return out, nil
}

func convertOwned(raw []rawOwned) ([]OwnedItem, error) {
	out := make([]OwnedItem, len(raw))
	for i, o := range raw {
		n, err := amountOf(o.Amount, i)
		if err != nil {
			return nil, err
		}
		out[i] = OwnedItem{
			Name:        o.Name,
			Description: o.Description,
			Amount:      n,
			Painted:     paintedOf(o.Painted),
			Criteria:    o.Criteria,
		}
	}
	return out, nil
}

func amountOf(v any, i int) (int, error) {
	if v == nil {
		return 1, nil
	}
	n, ok := utils.ToAmount(v)
	if !ok {
		return 0, fmt.Errorf("%w: record %d has amount %v", ErrInvalidAmount, i, v)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: record %d has amount %d", ErrInvalidAmount, i, n)
	}
	return n, nil
}

// paintedOf accepts booleans as well as "yes"/"1" style values from spreadsheets.
func paintedOf(v any) *bool {
	if v == nil {
		return nil
	}
	return utils.Ptr(utils.ToBool(v))
}

func unmarshal(data []byte, format Format, v any) error {
	if format == FormatYAML {
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

func isList(data []byte, format Format) bool {
	if format == FormatYAML {
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil || len(node.Content) == 0 {
			return false
		}
		return node.Content[0].Kind == yaml.SequenceNode
	}
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}
