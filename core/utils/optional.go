package utils

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// OptString returns nil for an empty string and a pointer to s otherwise.
func OptString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to value, or the zero value for nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
