package columnation

// CopyRegion absorbs trivially-bitwise-copyable leaf types: integers,
// booleans, floats, runes, time.Duration, and similar values with no owned
// interior storage. It terminates the recursive Region traversal: nested
// containers bottom out at a CopyRegion for their leaf field types instead
// of recursing further.
//
// The zero value is ready to use.
type CopyRegion[T any] struct{}

// NewCopyRegion constructs a CopyRegion. It exists so CopyRegion can be
// used as a `func() *CopyRegion[T]` constructor wherever one is expected
// (ColumnStack, VecRegion, ...).
func NewCopyRegion[T any]() *CopyRegion[T] { return &CopyRegion[T]{} }

// Copy returns a bitwise copy of item. T is assumed to own no interior
// allocations; callers must only instantiate CopyRegion for such types.
func (r *CopyRegion[T]) Copy(item *T) T { return *item }

// Clear is a no-op: CopyRegion holds no backing storage.
func (r *CopyRegion[T]) Clear() {}

// ReserveItems is a no-op: there is no backing storage to pre-size.
func (r *CopyRegion[T]) ReserveItems(items []T) {}

// ReserveRegions is a no-op: there is no backing storage to pre-size.
func (r *CopyRegion[T]) ReserveRegions(others []*CopyRegion[T]) {}

// HeapSize reports nothing: CopyRegion makes no heap allocations.
func (r *CopyRegion[T]) HeapSize(cb func(usedBytes, capacityBytes uintptr)) {}

var _ Region[int, *CopyRegion[int]] = (*CopyRegion[int])(nil)
