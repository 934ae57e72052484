package columnation

import "unsafe"

// StringStack absorbs the owned interior of string values: a StableRegion
// of bytes. The zero value is ready to use.
type StringStack struct {
	region StableRegion[byte]
}

// NewStringStack constructs a StringStack.
func NewStringStack() *StringStack { return &StringStack{} }

// Copy absorbs item's bytes into the backing StableRegion and returns a
// string header pointing at the stable copy.
//
// This is the module's one use of unsafe pointer conversion (size.go only
// calls unsafe.Sizeof): item's bytes are
// viewed without copying via unsafe.StringData, and the stable copy is
// turned back into a string via unsafe.String without a UTF-8 validating
// pass — item is already a valid Go string, so its bytes are known valid
// and revalidating them on every copy would be pure overhead.
func (r *StringStack) Copy(item *string) string {
	if len(*item) == 0 {
		return ""
	}

	src := unsafe.Slice(unsafe.StringData(*item), len(*item))
	dst := r.region.CopySlice(src)

	return unsafe.String(&dst[0], len(dst))
}

// Clear forwards to the backing StableRegion.
func (r *StringStack) Clear() { r.region.Clear() }

// ReserveItems sums the byte lengths of items and reserves that many
// bytes up front.
func (r *StringStack) ReserveItems(items []string) {
	total := 0
	for _, s := range items {
		total += len(s)
	}

	r.region.Reserve(total)
}

// ReserveRegions sums the byte counts already held by each sibling and
// reserves that many bytes up front.
func (r *StringStack) ReserveRegions(others []*StringStack) {
	total := 0
	for _, o := range others {
		total += o.region.Len()
	}

	r.region.Reserve(total)
}

// HeapSize forwards to the backing StableRegion.
func (r *StringStack) HeapSize(cb func(usedBytes, capacityBytes uintptr)) {
	r.region.HeapSize(cb)
}

var _ Region[string, *StringStack] = (*StringStack)(nil)
