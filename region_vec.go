package columnation

// VecRegion absorbs the owned interior of []T slices. It keeps a
// StableRegion[T] for the contiguous backing storage and a T region for
// whatever each element itself owns.
type VecRegion[T any, TR Region[T, TR]] struct {
	region StableRegion[T]
	inner  TR
}

// NewVecRegion constructs a VecRegion whose element region is built by
// newInner.
func NewVecRegion[T any, TR Region[T, TR]](newInner func() TR) func() *VecRegion[T, TR] {
	return func() *VecRegion[T, TR] {
		return &VecRegion[T, TR]{inner: newInner()}
	}
}

// Copy absorbs v's backing array: each element is first passed through the
// inner region, then the resulting sequence is appended into the
// StableRegion in one reserved run, yielding a stable slice of exactly
// len(v) elements with cap == len, so an append past the end detaches
// instead of corrupting whatever is packed next to it.
func (r *VecRegion[T, TR]) Copy(v *[]T) []T {
	src := *v
	if len(src) == 0 {
		return src[:0:0]
	}

	return r.region.CopyIter(len(src), func(i int) T {
		return r.inner.Copy(&src[i])
	})
}

// Clear forwards to both the backing StableRegion and the inner region.
func (r *VecRegion[T, TR]) Clear() {
	r.region.Clear()
	r.inner.Clear()
}

// ReserveItems flattens items to feed per-element counts to the inner
// region's ReserveItems and the total element count to the backing
// StableRegion's Reserve.
func (r *VecRegion[T, TR]) ReserveItems(items [][]T) {
	total := 0
	for _, v := range items {
		total += len(v)
	}

	r.region.Reserve(total)

	flat := make([]T, 0, total)
	for _, v := range items {
		flat = append(flat, v...)
	}

	r.inner.ReserveItems(flat)
}

// ReserveRegions forwards across both children of each sibling.
func (r *VecRegion[T, TR]) ReserveRegions(others []*VecRegion[T, TR]) {
	total := 0
	inners := make([]TR, len(others))

	for i, o := range others {
		total += o.region.Len()
		inners[i] = o.inner
	}

	r.region.Reserve(total)
	r.inner.ReserveRegions(inners)
}

// HeapSize reports both the backing StableRegion's allocations and the
// inner region's.
func (r *VecRegion[T, TR]) HeapSize(cb func(usedBytes, capacityBytes uintptr)) {
	r.region.HeapSize(cb)
	r.inner.HeapSize(cb)
}
