package columnation

import "unsafe"

// sizeOf returns the size in bytes of one T, including zero for any
// zero-sized T (e.g. struct{}), matching Go's own unsafe.Sizeof semantics.
func sizeOf[T any]() uintptr {
	var zero T

	return unsafe.Sizeof(zero)
}
