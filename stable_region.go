package columnation

import "errors"

// ErrNonPositiveLimit is returned by NewStableRegion when a WithLimit option
// is given a non-positive element-count bound.
var ErrNonPositiveLimit = errors.New("columnation: limit must be positive")

// StableRegion is a growing collection of contiguous buffers of T whose
// elements never move once placed, until Clear.
//
// A language without Go's append-reallocates-on-overflow slice semantics
// would need raw pointers and manual capacity bookkeeping to get this
// guarantee; a Go []T slice already gives it for free: as long as an
// append never needs to grow past the slice's declared capacity, the
// backing array's address never changes. StableRegion's entire job is
// therefore just picking capacities up front so that never happens.
//
// The zero value is an empty, ready-to-use region with no limit.
type StableRegion[T any] struct {
	local []T   // the buffer currently being appended to.
	stash [][]T // retired buffers, kept only for address stability.
	limit int   // upper bound on a grown buffer's doubled element count; 0 means unbounded.
}

// Option configures a StableRegion at construction time, following the
// functional-options idiom used throughout this module's ancestry.
type Option[T any] func(*StableRegion[T]) error

// WithLimit caps the element count that growth doubling picks for a new
// backing buffer. Buffers are still allowed to grow past limit in
// aggregate (via additional stashed buffers), and a single request for
// more than limit elements gets one buffer of exactly the requested size.
func WithLimit[T any](limit int) Option[T] {
	return func(r *StableRegion[T]) error {
		if limit <= 0 {
			return ErrNonPositiveLimit
		}

		r.limit = limit

		return nil
	}
}

// WithInitialCapacity pre-allocates the first buffer with the given
// element count, clamped to any limit set by an earlier option, avoiding
// a grow on the first Reserve/CopyIter/CopySlice.
func WithInitialCapacity[T any](n int) Option[T] {
	return func(r *StableRegion[T]) error {
		if n > 0 {
			r.local = make([]T, 0, clampToLimit(n, r.limit))
		}

		return nil
	}
}

// NewStableRegion constructs a StableRegion, applying opts in order.
func NewStableRegion[T any](opts ...Option[T]) (*StableRegion[T], error) {
	r := &StableRegion[T]{}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Reserve ensures local has at least n unused slots, growing if it does
// not:
//
//  1. next = next power of two >= cap(local)+1
//  2. next = min(next, limit) if a limit is set
//  3. next = max(next, n)
//  4. allocate a fresh buffer of capacity next
//  5. if local is empty, replace it in place; otherwise stash it first.
//
// A zero-sized element type never needs a backing allocation at all:
// make([]T, 0, n) for a zero-sized T is already a no-allocation operation
// in the Go runtime, so no special case is required to avoid growing a
// buffer that would occupy no memory anyway.
func (r *StableRegion[T]) Reserve(n int) {
	if n <= 0 {
		return
	}

	if n <= cap(r.local)-len(r.local) {
		return
	}

	next := nextPowerOfTwo(cap(r.local) + 1)
	next = clampToLimit(next, r.limit)

	if next < n {
		next = n
	}

	newLocal := make([]T, 0, next)
	if len(r.local) > 0 {
		r.stash = append(r.stash, r.local)
	}

	r.local = newLocal
}

// CopyIter reserves room for n elements, calls next exactly n times to
// produce each one in order, and returns the stable, len == cap slice of
// the newly written suffix. This is the Go rendering of `copy_iter`.
func (r *StableRegion[T]) CopyIter(n int, next func(i int) T) []T {
	if n <= 0 {
		return nil
	}

	r.Reserve(n)

	start := len(r.local)
	for i := 0; i < n; i++ {
		r.local = append(r.local, next(i))
	}

	return r.local[start : start+n : start+n]
}

// CopySlice reserves room for len(src) elements, appends a copy of src,
// and returns the stable, len == cap slice of the newly written suffix.
// This is the Go rendering of `copy_slice`; it is used directly where no
// per-element Region indirection is needed (e.g. StringStack's bytes).
func (r *StableRegion[T]) CopySlice(src []T) []T {
	if len(src) == 0 {
		return nil
	}

	r.Reserve(len(src))

	start := len(r.local)
	r.local = append(r.local, src...)

	return r.local[start : start+len(src) : start+len(src)]
}

// Clear length-resets local to zero and drops every stashed buffer's
// backing storage back to the allocator, without running any per-element
// cleanup (Go has none to run).
func (r *StableRegion[T]) Clear() {
	r.local = r.local[:0]
	r.stash = nil
}

// Len returns the total number of elements held across local and every
// stashed buffer.
func (r *StableRegion[T]) Len() int {
	n := len(r.local)
	for _, b := range r.stash {
		n += len(b)
	}

	return n
}

// HeapSize reports local and every stashed buffer as one allocation apiece,
// via cb(usedBytes, capacityBytes). An element's size is computed once and
// reused.
func (r *StableRegion[T]) HeapSize(cb func(usedBytes, capacityBytes uintptr)) {
	elemSize := sizeOf[T]()
	if elemSize == 0 {
		return
	}

	if cap(r.local) > 0 {
		cb(uintptr(len(r.local))*elemSize, uintptr(cap(r.local))*elemSize)
	}

	for _, b := range r.stash {
		cb(uintptr(len(b))*elemSize, uintptr(cap(b))*elemSize)
	}
}

func clampToLimit(n, limit int) int {
	if limit > 0 && n > limit {
		return limit
	}

	return n
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
