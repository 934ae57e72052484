package columnation

// Region is a type-specialized absorber for the owned interior storage of
// one item type. A language with associated types could bind an item type
// to its region through a single trait; Go generics have no associated
// types, so the binding is made explicit with two type parameters instead:
// Item is the type being absorbed, and Self is the concrete region type
// implementing the interface (always instantiated as a pointer type, since
// every method here needs to mutate the region's backing buffers). Self
// exists only so ReserveRegions can accept a batch of sibling regions of
// the exact same concrete type; callers outside this package never need to
// spell it beyond satisfying the constraint at a call site.
//
// Implementations must never run cleanup logic on a previously returned
// replica from Clear: a replica's interior storage is owned by the region,
// not the replica, and Go has no destructors to suppress in the first
// place — Clear only resets the region's own bookkeeping.
type Region[Item, Self any] interface {
	// Copy absorbs item's owned interior storage into this region and
	// returns a replica whose interior pointers, if any, refer into this
	// region rather than item's original allocations. The replica's
	// interior slices and strings always carry len == cap.
	Copy(item *Item) Item

	// Clear discards all interior contents without inspecting or running
	// any per-replica cleanup.
	Clear()

	// ReserveItems pre-sizes the region so that copying exactly these
	// items next will not need to grow any backing buffer mid-copy.
	ReserveItems(items []Item)

	// ReserveRegions pre-sizes this region so that absorbing the combined
	// contents of others — regions of the same concrete type, typically
	// about to be merged or replayed into this one — will not need to
	// grow.
	ReserveRegions(others []Self)

	// HeapSize reports this region's backing allocations. cb is invoked
	// once per distinct allocation with the bytes in use and the bytes of
	// capacity backing it.
	HeapSize(cb func(usedBytes, capacityBytes uintptr))
}

// WithCapacityItems builds a region via newRegion and pre-sizes it for
// items with ReserveItems in one call. Go has no interface default
// methods, so this is a free function taking the region's constructor
// explicitly rather than a method with a default body.
func WithCapacityItems[Item any, Self Region[Item, Self]](newRegion func() Self, items []Item) Self {
	r := newRegion()
	r.ReserveItems(items)

	return r
}

// WithCapacityRegions builds a region via newRegion and pre-sizes it for
// others with ReserveRegions.
func WithCapacityRegions[Item any, Self Region[Item, Self]](newRegion func() Self, others []Self) Self {
	r := newRegion()
	r.ReserveRegions(others)

	return r
}
