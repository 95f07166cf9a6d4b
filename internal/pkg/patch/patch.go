// Package patch holds helpers for partial-update payloads, where a nil
// pointer field means "leave unchanged".
package patch

// Of returns a pointer to v, for building patch fields from literals.
func Of[T any](v T) *T {
	return &v
}

// Coalesce dereferences ptr, falling back to fallback when it is nil.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
