package columnation

import "fmt"

// ColumnStack is the public, append-only container pairing a surface
// buffer of T with T's Region. Every element retrieved by
// index or iteration is a replica produced by inner.Copy — its interior
// slices and strings, if any, refer into inner's backing StableRegions
// rather than independent allocations, and carry len == cap so that an
// accidental append detaches instead of corrupting a neighboring record.
//
// The zero value is not ready to use: inner has no constructor to call on
// Clone, so ColumnStack must be built with NewColumnStack.
type ColumnStack[T any, R Region[T, R]] struct {
	local     []T
	inner     R
	newRegion func() R
}

// NewColumnStack constructs an empty ColumnStack whose region is built by
// newRegion. newRegion is retained so Clone can build a fresh one.
func NewColumnStack[T any, R Region[T, R]](newRegion func() R) *ColumnStack[T, R] {
	return &ColumnStack[T, R]{
		inner:     newRegion(),
		newRegion: newRegion,
	}
}

// Copy absorbs item's owned interior storage via the inner region and
// appends the resulting replica to the surface buffer.
func (s *ColumnStack[T, R]) Copy(item *T) {
	s.local = append(s.local, s.inner.Copy(item))
}

// Clear truncates the surface buffer to zero length — without running any
// per-element cleanup, since none of the surface elements are valid owned
// values to begin with — then clears the inner region.
func (s *ColumnStack[T, R]) Clear() {
	s.local = s.local[:0]
	s.inner.Clear()
}

// RetainFrom keeps, from index onward, exactly the elements for which
// predicate returns true, preserving their relative order, and truncates
// the rest. Surviving elements are swapped forward in place; the prefix
// local[:index] is left untouched.
//
// This does not compact the inner region or update any pointers — retained
// elements keep aliasing their original interior storage, which may now be
// larger than necessary.
// TODO: compact the inner region and update pointers once retention is
// common enough to justify the bookkeeping.
func (s *ColumnStack[T, R]) RetainFrom(index int, predicate func(*T) bool) {
	write := index
	for read := index; read < len(s.local); read++ {
		if predicate(&s.local[read]) {
			s.local[write], s.local[read] = s.local[read], s.local[write]
			write++
		}
	}

	s.local = s.local[:write]
}

// ReserveItems forwards to both the surface buffer and the inner region.
func (s *ColumnStack[T, R]) ReserveItems(items []T) {
	if n := len(items) - (cap(s.local) - len(s.local)); n > 0 {
		grown := make([]T, len(s.local), cap(s.local)+n)
		copy(grown, s.local)
		s.local = grown
	}

	s.inner.ReserveItems(items)
}

// ReserveRegions forwards to the inner region only: the surface buffer has
// no notion of "regions", only of item counts (use ReserveItems for that).
func (s *ColumnStack[T, R]) ReserveRegions(others []R) {
	s.inner.ReserveRegions(others)
}

// Extend copies each referenced record from items in order, reserving
// capacity up front using len(items) as the size hint.
func (s *ColumnStack[T, R]) Extend(items []T) {
	s.ReserveItems(items)
	for i := range items {
		s.Copy(&items[i])
	}
}

// HeapSize reports the inner region's backing allocations.
func (s *ColumnStack[T, R]) HeapSize(cb func(usedBytes, capacityBytes uintptr)) {
	s.inner.HeapSize(cb)
}

// SummedHeapSize reports the total used and capacity bytes across every
// allocation HeapSize would report.
func (s *ColumnStack[T, R]) SummedHeapSize() (usedBytes, capacityBytes uintptr) {
	s.HeapSize(func(used, capacity uintptr) {
		usedBytes += used
		capacityBytes += capacity
	})

	return usedBytes, capacityBytes
}

// Len returns the number of elements currently held.
func (s *ColumnStack[T, R]) Len() int { return len(s.local) }

// At returns a pointer to the element at i. The returned pointer is valid
// until the next Clear, RetainFrom or drop.
func (s *ColumnStack[T, R]) At(i int) *T { return &s.local[i] }

// Slice returns the current contents as a read-only view. The returned
// slice aliases the surface buffer and is invalidated by any subsequent
// mutating call.
func (s *ColumnStack[T, R]) Slice() []T { return s.local }

// Equal reports whether s and other hold element-wise equal sequences,
// using eq to compare each pair. eq is a parameter rather than a `==`
// comparison since not every T this container can be instantiated with is
// comparable.
func (s *ColumnStack[T, R]) Equal(other *ColumnStack[T, R], eq func(a, b *T) bool) bool {
	if len(s.local) != len(other.local) {
		return false
	}

	for i := range s.local {
		if !eq(&s.local[i], &other.local[i]) {
			return false
		}
	}

	return true
}

// String renders the surface buffer for debugging.
func (s *ColumnStack[T, R]) String() string {
	return fmt.Sprintf("ColumnStack%v", s.local)
}

// Clone rebuilds a new ColumnStack by replaying Copy for every element
// against a fresh inner region. This is deliberately a deep copy rather
// than a shared-region shallow one: the fresh region has its own backing
// buffers, so mutating one stack's elements can never move or invalidate
// the other's.
func (s *ColumnStack[T, R]) Clone() *ColumnStack[T, R] {
	out := NewColumnStack[T, R](s.newRegion)
	out.Extend(s.local)

	return out
}

// CopyDestructured1 absorbs a single field reference directly into a
// ColumnStack of Tuple1[A], without the caller assembling a Tuple1 first.
func CopyDestructured1[A any, AR Region[A, AR]](
	s *ColumnStack[Tuple1[A], *Tuple1Region[A, AR]], a *A,
) {
	s.local = append(s.local, s.inner.CopyDestructured(a))
}

// CopyDestructured2 absorbs field references directly into a ColumnStack
// of Tuple2[A, B], without the caller assembling a Tuple2 first.
func CopyDestructured2[A, B any, AR Region[A, AR], BR Region[B, BR]](
	s *ColumnStack[Tuple2[A, B], *Tuple2Region[A, B, AR, BR]], a *A, b *B,
) {
	s.local = append(s.local, s.inner.CopyDestructured(a, b))
}

// CopyDestructured3 absorbs field references directly into a ColumnStack
// of Tuple3[A, B, C], without the caller assembling a Tuple3 first.
func CopyDestructured3[A, B, C any, AR Region[A, AR], BR Region[B, BR], CR Region[C, CR]](
	s *ColumnStack[Tuple3[A, B, C], *Tuple3Region[A, B, C, AR, BR, CR]], a *A, b *B, c *C,
) {
	s.local = append(s.local, s.inner.CopyDestructured(a, b, c))
}
