package reconcile

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ExpandRequired repeats every record Amount times with Amount set to 1, in input order.
// More than MaxInstances instances in total fail with ErrTooManyInstances.
// Optional fields are shared with the input, not copied.
func ExpandRequired(records []RequiredModel) ([]RequiredModel, error) {
	return expand(records, func(r *RequiredModel) *int { return &r.Amount })
}

// ExpandOwned repeats every item Amount times with Amount set to 1, in input order.
// Optional fields and criteria are shared with the input, not copied.
func ExpandOwned(items []OwnedItem) ([]OwnedItem, error) {
	return expand(items, func(o *OwnedItem) *int { return &o.Amount })
}

// StackRequired merges structurally identical records, summing their amounts.
// Output order is the order of first occurrence.
func StackRequired(records []RequiredModel) []RequiredModel {
	return stack(records, hashRequired, equalRequired, func(r *RequiredModel) *int { return &r.Amount })
}

// StackOwned merges structurally identical items, summing their amounts.
// Criteria take part in the comparison, in order.
func StackOwned(items []OwnedItem) []OwnedItem {
	return stack(items, hashOwned, equalOwned, func(o *OwnedItem) *int { return &o.Amount })
}

func expand[T any](records []T, amount func(*T) *int) ([]T, error) {
	total := 0
	for i := range records {
		n := *amount(&records[i])
		if n < 0 {
			return nil, fmt.Errorf("%w: record %d has amount %d", ErrInvalidAmount, i, n)
		}
		if n > MaxInstances-total {
			return nil, fmt.Errorf("%w: record %d pushes the total past %d", ErrTooManyInstances, i, MaxInstances)
		}
		total += n
	}

	out := make([]T, 0, total)
	for i := range records {
		single := records[i]
		n := *amount(&single)
		*amount(&single) = 1
		for j := 0; j < n; j++ {
			out = append(out, single)
		}
	}
	return out, nil
}

func stack[T any](records []T, hash func(*T) uint64, equal func(a, b *T) bool, amount func(*T) *int) []T {
	out := make([]T, 0, len(records))
	buckets := make(map[uint64][]int)

	for i := range records {
		rec := &records[i]
		h := hash(rec)

		merged := false
		for _, at := range buckets[h] {
			if equal(&out[at], rec) {
				*amount(&out[at]) += *amount(rec)
				merged = true
				break
			}
		}
		if !merged {
			buckets[h] = append(buckets[h], len(out))
			out = append(out, *rec)
		}
	}
	return out
}

func hashRequired(r *RequiredModel) uint64 {
	d := xxhash.New()
	writeString(d, r.Name)
	writeOptional(d, r.Unit)
	writeOptional(d, r.Catalogue)
	return d.Sum64()
}

func equalRequired(a, b *RequiredModel) bool {
	return a.Name == b.Name &&
		equalOptional(a.Unit, b.Unit) &&
		equalOptional(a.Catalogue, b.Catalogue)
}

func hashOwned(o *OwnedItem) uint64 {
	d := xxhash.New()
	writeString(d, o.Name)
	writeOptional(d, o.Description)
	switch {
	case o.Painted == nil:
		_, _ = d.Write([]byte{0})
	case *o.Painted:
		_, _ = d.Write([]byte{1, 1})
	default:
		_, _ = d.Write([]byte{1, 0})
	}
	writeLength(d, len(o.Criteria))
	for _, c := range o.Criteria {
		writeString(d, c.Name)
		writeOptional(d, c.Unit)
		writeOptional(d, c.Catalogue)
	}
	return d.Sum64()
}

func equalOwned(a, b *OwnedItem) bool {
	if a.Name != b.Name || !equalOptional(a.Description, b.Description) {
		return false
	}
	if (a.Painted == nil) != (b.Painted == nil) || (a.Painted != nil && *a.Painted != *b.Painted) {
		return false
	}
	if len(a.Criteria) != len(b.Criteria) {
		return false
	}
	for i := range a.Criteria {
		if !equalCriterion(a.Criteria[i], b.Criteria[i]) {
			return false
		}
	}
	return true
}

func equalCriterion(a, b MatchCriterion) bool {
	return a.Name == b.Name &&
		equalOptional(a.Unit, b.Unit) &&
		equalOptional(a.Catalogue, b.Catalogue)
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Strings are length-prefixed and optionals carry a presence byte so that
// distinct field layouts never feed the digest the same bytes.
func writeString(d *xxhash.Digest, s string) {
	writeLength(d, len(s))
	_, _ = d.WriteString(s)
}

func writeOptional(d *xxhash.Digest, s *string) {
	if s == nil {
		_, _ = d.Write([]byte{0})
		return
	}
	_, _ = d.Write([]byte{1})
	writeString(d, *s)
}

func writeLength(d *xxhash.Digest, n int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	_, _ = d.Write(buf[:])
}
