package testutil

// Ptr returns a pointer to the given value.
// Convenient for building fixtures with optional numeric fields.
func Ptr[T any](v T) *T {
	return &v
}
