// Package patch merges partial updates where a nil pointer means "leave as is".
package patch

// Coalesce returns *ptr when set, otherwise fallback.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Map converts *ptr with fn when set, otherwise returns fallback.
func Map[T, U any](ptr *T, fn func(T) U, fallback U) U {
	if ptr != nil {
		return fn(*ptr)
	}
	return fallback
}

// First returns the first non-nil pointer, for optional fields that stay optional.
func First[T any](ptrs ...*T) *T {
	for _, p := range ptrs {
		if p != nil {
			return p
		}
	}
	return nil
}
