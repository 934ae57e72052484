package columnation

import (
	"reflect"
	"testing"
)

func TestOptionRegionCopyPreservesValidityAndValue(t *testing.T) {
	newOptInt := NewOptionRegion[int, *CopyRegion[int]](NewCopyRegion[int])
	r := newOptInt()

	some := Some(7)
	none := None[int]()

	gotSome := r.Copy(&some)
	gotNone := r.Copy(&none)

	if !gotSome.Valid || gotSome.Value != 7 {
		t.Fatalf("expected Some(7), got %#v", gotSome)
	}
	if gotNone.Valid {
		t.Fatalf("expected None, got %#v", gotNone)
	}
}

func TestOptionRegionReserveItemsOnlyCountsPresentValues(t *testing.T) {
	newOptString := NewOptionRegion[string, *StringStack](NewStringStack)
	r := newOptString()

	items := []Optional[string]{Some("hello"), None[string](), Some("world")}
	r.ReserveItems(items) // must not panic walking a mix of Some/None.

	for _, it := range items {
		got := r.Copy(&it)
		if got.Valid != it.Valid || got.Value != it.Value {
			t.Fatalf("round trip mismatch: want %#v got %#v", it, got)
		}
	}
}

func TestResultRegionDispatchesToCorrectBranch(t *testing.T) {
	newResult := NewResultRegion[int, string, *CopyRegion[int], *StringStack](
		NewCopyRegion[int], NewStringStack,
	)
	r := newResult()

	ok := Ok[int, string](42)
	failure := Err[int, string]("boom")

	gotOk := r.Copy(&ok)
	gotErr := r.Copy(&failure)

	if !gotOk.IsOk || gotOk.Ok != 42 {
		t.Fatalf("expected Ok(42), got %#v", gotOk)
	}
	if gotErr.IsOk || gotErr.Err != "boom" {
		t.Fatalf("expected Err(\"boom\"), got %#v", gotErr)
	}
}

func TestResultRegionReserveItemsWalksBothBranches(t *testing.T) {
	newResult := NewResultRegion[int, int, *CopyRegion[int], *CopyRegion[int]](
		NewCopyRegion[int], NewCopyRegion[int],
	)
	r := newResult()

	items := []Either[int, int]{
		Ok[int, int](1), Err[int, int](2), Ok[int, int](3), Err[int, int](4),
	}
	r.ReserveItems(items)

	for _, it := range items {
		got := r.Copy(&it)
		if got != it {
			t.Fatalf("round trip mismatch: want %#v got %#v", it, got)
		}
	}
}

func TestVecRegionCopyProducesLenEqualsCapReplica(t *testing.T) {
	newVec := NewVecRegion[int, *CopyRegion[int]](NewCopyRegion[int])
	r := newVec()

	src := []int{1, 2, 3, 4, 5}
	got := r.Copy(&src)

	if !reflect.DeepEqual(got, src) {
		t.Fatalf("expected %v, got %v", src, got)
	}
	if len(got) != cap(got) {
		t.Fatalf("expected len==cap, got len=%d cap=%d", len(got), cap(got))
	}
}

func TestVecRegionCopyOfEmptySliceAllocatesNothing(t *testing.T) {
	newVec := NewVecRegion[int, *CopyRegion[int]](NewCopyRegion[int])
	r := newVec()

	var src []int
	got := r.Copy(&src)

	if len(got) != 0 {
		t.Fatalf("expected empty replica, got %v", got)
	}

	used, capacity := uintptr(0), uintptr(0)
	r.HeapSize(func(u, c uintptr) { used += u; capacity += c })
	if used != 0 || capacity != 0 {
		t.Fatalf("expected no heap usage for an empty slice copy, got used=%d capacity=%d", used, capacity)
	}
}

func TestStringStackCopyOfEmptyStringAllocatesNothing(t *testing.T) {
	r := NewStringStack()

	empty := ""
	got := r.Copy(&empty)

	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}

	var used uintptr
	r.HeapSize(func(u, _ uintptr) { used += u })
	if used != 0 {
		t.Fatalf("expected no heap usage for an empty string copy, got %d", used)
	}
}

func TestStringStackCopyIsByteForByteIndependentOfSource(t *testing.T) {
	r := NewStringStack()

	src := []byte("independent")
	s := string(src)
	got := r.Copy(&s)

	// Mutate the original backing bytes; the stored replica must be
	// unaffected since Copy took its own stable copy.
	src[0] = 'X'

	if got != "independent" {
		t.Fatalf("replica observed mutation of the original source bytes: %q", got)
	}
}

func TestPrimitiveRegionsRoundTrip(t *testing.T) {
	boolR := NewBoolRegion()
	bv := true
	if got := boolR.Copy(&bv); got != true {
		t.Fatalf("bool region: expected true, got %v", got)
	}

	u64R := NewUint64Region()
	var uv uint64 = 1 << 40
	if got := u64R.Copy(&uv); got != uv {
		t.Fatalf("uint64 region: expected %d, got %d", uv, got)
	}

	f64R := NewFloat64Region()
	var fv float64 = 3.25
	if got := f64R.Copy(&fv); got != fv {
		t.Fatalf("float64 region: expected %v, got %v", fv, got)
	}

	unitR := NewUnitRegion()
	uu := Unit{}
	if got := unitR.Copy(&uu); got != uu {
		t.Fatalf("unit region: expected zero value, got %v", got)
	}
}

// smallVecLike mirrors the source's test_smallvec composite: a user-defined
// struct with a fixed-size inline array alongside owned Vec/String/Option
// fields, proving the generic Region wiring composes across a realistic
// multi-field record.
type smallVecLike struct {
	Inline [4]uint32
	Spill  []uint64
	Label  string
	Note   Optional[string]
}

type smallVecLikeRegion struct {
	spill *VecRegion[uint64, *CopyRegion[uint64]]
	label *StringStack
	note  *OptionRegion[string, *StringStack]
}

func newSmallVecLikeRegion() *smallVecLikeRegion {
	return &smallVecLikeRegion{
		spill: NewVecRegion[uint64, *CopyRegion[uint64]](NewCopyRegion[uint64])(),
		label: NewStringStack(),
		note:  NewOptionRegion[string, *StringStack](NewStringStack)(),
	}
}

func (r *smallVecLikeRegion) Copy(item *smallVecLike) smallVecLike {
	return smallVecLike{
		Inline: item.Inline,
		Spill:  r.spill.Copy(&item.Spill),
		Label:  r.label.Copy(&item.Label),
		Note:   r.note.Copy(&item.Note),
	}
}

func (r *smallVecLikeRegion) Clear() {
	r.spill.Clear()
	r.label.Clear()
	r.note.Clear()
}

func (r *smallVecLikeRegion) ReserveItems(items []smallVecLike) {
	spills := make([][]uint64, len(items))
	labels := make([]string, len(items))
	notes := make([]Optional[string], len(items))

	for i, it := range items {
		spills[i] = it.Spill
		labels[i] = it.Label
		notes[i] = it.Note
	}

	r.spill.ReserveItems(spills)
	r.label.ReserveItems(labels)
	r.note.ReserveItems(notes)
}

func (r *smallVecLikeRegion) ReserveRegions(others []*smallVecLikeRegion) {
	spills := make([]*VecRegion[uint64, *CopyRegion[uint64]], len(others))
	labels := make([]*StringStack, len(others))
	notes := make([]*OptionRegion[string, *StringStack], len(others))

	for i, o := range others {
		spills[i] = o.spill
		labels[i] = o.label
		notes[i] = o.note
	}

	r.spill.ReserveRegions(spills)
	r.label.ReserveRegions(labels)
	r.note.ReserveRegions(notes)
}

func (r *smallVecLikeRegion) HeapSize(cb func(usedBytes, capacityBytes uintptr)) {
	r.spill.HeapSize(cb)
	r.label.HeapSize(cb)
	r.note.HeapSize(cb)
}

func TestSmallVecLikeCompositeRecordRoundTrips(t *testing.T) {
	stack := NewColumnStack[smallVecLike, *smallVecLikeRegion](newSmallVecLikeRegion)

	rec := smallVecLike{
		Inline: [4]uint32{1, 2, 3, 4},
		Spill:  []uint64{10, 20, 30},
		Label:  "small-vec-like",
		Note:   Some("present"),
	}

	stack.Copy(&rec)
	stack.Copy(&rec)

	if stack.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", stack.Len())
	}
	if !reflect.DeepEqual(*stack.At(0), rec) {
		t.Fatalf("replica 0 does not equal input record")
	}
	if !reflect.DeepEqual(*stack.At(1), rec) {
		t.Fatalf("replica 1 does not equal input record")
	}

	// Mutate the original's owned fields; stored replicas must be unaffected.
	rec.Spill[0] = 999
	rec.Label = "mutated"

	if (*stack.At(0)).Spill[0] == 999 {
		t.Fatalf("replica observed mutation of the original's Spill slice")
	}
	if (*stack.At(0)).Label == "mutated" {
		t.Fatalf("replica observed mutation of the original's Label string")
	}
}
