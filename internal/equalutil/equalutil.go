// Package equalutil supports the generated Equals methods of the document
// model, where optional Swagger fields are pointers.
package equalutil

// EqualPtr reports whether two pointers are both nil or point to equal
// values. A nil and a non-nil pointer are never equal, even when the
// non-nil one points to the zero value.
func EqualPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
