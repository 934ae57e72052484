package columnation

// Tuple1, Tuple2 and Tuple3 are fixed-arity product types, standing in for
// anonymous tuples in languages that have them. Each arity's shape
// (TupleNRegion delegating to one region per field) is mechanical, so only
// the small arities actually exercised elsewhere in this module are
// hand-written rather than expanded all the way to some arbitrary ceiling.

// Tuple1 wraps a single field. It exists for symmetry with TupleNRegion's
// generated-code shape, and so a ColumnStack of single-field records can
// still use CopyDestructured without the caller assembling a value first.
type Tuple1[A any] struct {
	A A
}

// Tuple2 holds two fields.
type Tuple2[A, B any] struct {
	A A
	B B
}

// Tuple3 holds three fields.
type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

// Tuple1Region absorbs the owned interior of Tuple1[A] by delegating to
// A's region.
type Tuple1Region[A any, AR Region[A, AR]] struct {
	a AR
}

// NewTuple1Region constructs a Tuple1Region from a field-region
// constructor.
func NewTuple1Region[A any, AR Region[A, AR]](newA func() AR) func() *Tuple1Region[A, AR] {
	return func() *Tuple1Region[A, AR] { return &Tuple1Region[A, AR]{a: newA()} }
}

func (r *Tuple1Region[A, AR]) Copy(item *Tuple1[A]) Tuple1[A] {
	return Tuple1[A]{A: r.a.Copy(&item.A)}
}

// CopyDestructured absorbs a field reference directly, without the caller
// assembling a Tuple1 first.
func (r *Tuple1Region[A, AR]) CopyDestructured(a *A) Tuple1[A] {
	return Tuple1[A]{A: r.a.Copy(a)}
}

func (r *Tuple1Region[A, AR]) Clear() { r.a.Clear() }

func (r *Tuple1Region[A, AR]) ReserveItems(items []Tuple1[A]) {
	as := make([]A, len(items))
	for i, it := range items {
		as[i] = it.A
	}

	r.a.ReserveItems(as)
}

func (r *Tuple1Region[A, AR]) ReserveRegions(others []*Tuple1Region[A, AR]) {
	as := make([]AR, len(others))
	for i, o := range others {
		as[i] = o.a
	}

	r.a.ReserveRegions(as)
}

func (r *Tuple1Region[A, AR]) HeapSize(cb func(usedBytes, capacityBytes uintptr)) {
	r.a.HeapSize(cb)
}

// Tuple2Region absorbs the owned interior of Tuple2[A, B] by delegating to
// each field's region.
type Tuple2Region[A, B any, AR Region[A, AR], BR Region[B, BR]] struct {
	a AR
	b BR
}

// NewTuple2Region constructs a Tuple2Region from per-field region
// constructors.
func NewTuple2Region[A, B any, AR Region[A, AR], BR Region[B, BR]](
	newA func() AR, newB func() BR,
) func() *Tuple2Region[A, B, AR, BR] {
	return func() *Tuple2Region[A, B, AR, BR] {
		return &Tuple2Region[A, B, AR, BR]{a: newA(), b: newB()}
	}
}

func (r *Tuple2Region[A, B, AR, BR]) Copy(item *Tuple2[A, B]) Tuple2[A, B] {
	return Tuple2[A, B]{A: r.a.Copy(&item.A), B: r.b.Copy(&item.B)}
}

// CopyDestructured absorbs field references directly, without the caller
// assembling a Tuple2 first.
func (r *Tuple2Region[A, B, AR, BR]) CopyDestructured(a *A, b *B) Tuple2[A, B] {
	return Tuple2[A, B]{A: r.a.Copy(a), B: r.b.Copy(b)}
}

func (r *Tuple2Region[A, B, AR, BR]) Clear() {
	r.a.Clear()
	r.b.Clear()
}

func (r *Tuple2Region[A, B, AR, BR]) ReserveItems(items []Tuple2[A, B]) {
	as := make([]A, len(items))
	bs := make([]B, len(items))

	for i, it := range items {
		as[i] = it.A
		bs[i] = it.B
	}

	r.a.ReserveItems(as)
	r.b.ReserveItems(bs)
}

func (r *Tuple2Region[A, B, AR, BR]) ReserveRegions(others []*Tuple2Region[A, B, AR, BR]) {
	as := make([]AR, len(others))
	bs := make([]BR, len(others))

	for i, o := range others {
		as[i] = o.a
		bs[i] = o.b
	}

	r.a.ReserveRegions(as)
	r.b.ReserveRegions(bs)
}

func (r *Tuple2Region[A, B, AR, BR]) HeapSize(cb func(usedBytes, capacityBytes uintptr)) {
	r.a.HeapSize(cb)
	r.b.HeapSize(cb)
}

// Tuple3Region absorbs the owned interior of Tuple3[A, B, C] by delegating
// to each field's region.
type Tuple3Region[A, B, C any, AR Region[A, AR], BR Region[B, BR], CR Region[C, CR]] struct {
	a AR
	b BR
	c CR
}

// NewTuple3Region constructs a Tuple3Region from per-field region
// constructors.
func NewTuple3Region[A, B, C any, AR Region[A, AR], BR Region[B, BR], CR Region[C, CR]](
	newA func() AR, newB func() BR, newC func() CR,
) func() *Tuple3Region[A, B, C, AR, BR, CR] {
	return func() *Tuple3Region[A, B, C, AR, BR, CR] {
		return &Tuple3Region[A, B, C, AR, BR, CR]{a: newA(), b: newB(), c: newC()}
	}
}

func (r *Tuple3Region[A, B, C, AR, BR, CR]) Copy(item *Tuple3[A, B, C]) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{A: r.a.Copy(&item.A), B: r.b.Copy(&item.B), C: r.c.Copy(&item.C)}
}

// CopyDestructured absorbs field references directly, without the caller
// assembling a Tuple3 first.
func (r *Tuple3Region[A, B, C, AR, BR, CR]) CopyDestructured(a *A, b *B, c *C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{A: r.a.Copy(a), B: r.b.Copy(b), C: r.c.Copy(c)}
}

func (r *Tuple3Region[A, B, C, AR, BR, CR]) Clear() {
	r.a.Clear()
	r.b.Clear()
	r.c.Clear()
}

func (r *Tuple3Region[A, B, C, AR, BR, CR]) ReserveItems(items []Tuple3[A, B, C]) {
	as := make([]A, len(items))
	bs := make([]B, len(items))
	cs := make([]C, len(items))

	for i, it := range items {
		as[i] = it.A
		bs[i] = it.B
		cs[i] = it.C
	}

	r.a.ReserveItems(as)
	r.b.ReserveItems(bs)
	r.c.ReserveItems(cs)
}

func (r *Tuple3Region[A, B, C, AR, BR, CR]) ReserveRegions(others []*Tuple3Region[A, B, C, AR, BR, CR]) {
	as := make([]AR, len(others))
	bs := make([]BR, len(others))
	cs := make([]CR, len(others))

	for i, o := range others {
		as[i] = o.a
		bs[i] = o.b
		cs[i] = o.c
	}

	r.a.ReserveRegions(as)
	r.b.ReserveRegions(bs)
	r.c.ReserveRegions(cs)
}

func (r *Tuple3Region[A, B, C, AR, BR, CR]) HeapSize(cb func(usedBytes, capacityBytes uintptr)) {
	r.a.HeapSize(cb)
	r.b.HeapSize(cb)
	r.c.HeapSize(cb)
}
