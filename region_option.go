package columnation

// Optional is a present-or-absent value, generic over any T a Region
// exists for. Go has no built-in optional type, so one is introduced here
// so OptionRegion has a concrete Item type to absorb.
type Optional[T any] struct {
	Valid bool
	Value T
}

// Some constructs a present Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{Valid: true, Value: v} }

// None constructs an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// OptionRegion absorbs the owned interior of Optional[T] values by
// delegating to T's own region.
type OptionRegion[T any, TR Region[T, TR]] struct {
	inner TR
}

// NewOptionRegion constructs an OptionRegion whose inner region is built
// by newInner.
func NewOptionRegion[T any, TR Region[T, TR]](newInner func() TR) func() *OptionRegion[T, TR] {
	return func() *OptionRegion[T, TR] {
		return &OptionRegion[T, TR]{inner: newInner()}
	}
}

// Copy absorbs the present value through the inner region, if any; an
// absent Optional has no interior storage to absorb.
func (r *OptionRegion[T, TR]) Copy(item *Optional[T]) Optional[T] {
	if !item.Valid {
		return None[T]()
	}

	return Some(r.inner.Copy(&item.Value))
}

// Clear forwards to the inner region.
func (r *OptionRegion[T, TR]) Clear() { r.inner.Clear() }

// ReserveItems projects the present values out of items, discarding the
// absent ones, and forwards them to the inner region: absent values own no
// interior storage to reserve for.
func (r *OptionRegion[T, TR]) ReserveItems(items []Optional[T]) {
	values := make([]T, 0, len(items))
	for _, it := range items {
		if it.Valid {
			values = append(values, it.Value)
		}
	}

	r.inner.ReserveItems(values)
}

// ReserveRegions forwards across the inner region of each sibling.
func (r *OptionRegion[T, TR]) ReserveRegions(others []*OptionRegion[T, TR]) {
	inners := make([]TR, len(others))
	for i, o := range others {
		inners[i] = o.inner
	}

	r.inner.ReserveRegions(inners)
}

// HeapSize forwards to the inner region.
func (r *OptionRegion[T, TR]) HeapSize(cb func(usedBytes, capacityBytes uintptr)) {
	r.inner.HeapSize(cb)
}
