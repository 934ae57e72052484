package columnation

// Either holds exactly one of two payload types, discriminated by IsOk. Go
// has no built-in two-variant sum type, so one is introduced here, generic
// over the Ok and Err payload types, so ResultRegion has a concrete Item
// type to absorb.
type Either[L, R any] struct {
	IsOk bool
	Ok   L
	Err  R
}

// Ok constructs a successful Either.
func Ok[L, R any](v L) Either[L, R] { return Either[L, R]{IsOk: true, Ok: v} }

// Err constructs a failed Either.
func Err[L, R any](e R) Either[L, R] { return Either[L, R]{Err: e} }

// ResultRegion absorbs the owned interior of Either[L, R] values,
// dispatching on the discriminant to the Ok region or the Err region.
type ResultRegion[L, R any, LR Region[L, LR], RR Region[R, RR]] struct {
	ok  LR
	err RR
}

// NewResultRegion constructs a ResultRegion whose branch regions are built
// by newOk and newErr.
func NewResultRegion[L, R any, LR Region[L, LR], RR Region[R, RR]](
	newOk func() LR, newErr func() RR,
) func() *ResultRegion[L, R, LR, RR] {
	return func() *ResultRegion[L, R, LR, RR] {
		return &ResultRegion[L, R, LR, RR]{ok: newOk(), err: newErr()}
	}
}

// Copy dispatches on the discriminant, absorbing the Ok payload through
// the Ok region or the Err payload through the Err region.
func (r *ResultRegion[L, R, LR, RR]) Copy(item *Either[L, R]) Either[L, R] {
	if item.IsOk {
		return Ok[L, R](r.ok.Copy(&item.Ok))
	}

	return Err[L, R](r.err.Copy(&item.Err))
}

// Clear forwards to both branch regions.
func (r *ResultRegion[L, R, LR, RR]) Clear() {
	r.ok.Clear()
	r.err.Clear()
}

// ReserveItems walks items twice — once filtered to the Ok branch, once to
// the Err branch — so each branch region can reserve only for the payloads
// it will actually absorb. A Go slice can be walked any number of times at
// zero cost, so no iterator-cloning abstraction is needed to do this.
func (r *ResultRegion[L, R, LR, RR]) ReserveItems(items []Either[L, R]) {
	oks := make([]L, 0, len(items))
	errs := make([]R, 0, len(items))

	for _, it := range items {
		if it.IsOk {
			oks = append(oks, it.Ok)
		} else {
			errs = append(errs, it.Err)
		}
	}

	r.ok.ReserveItems(oks)
	r.err.ReserveItems(errs)
}

// ReserveRegions forwards to each branch across all siblings' matching
// branch region.
func (r *ResultRegion[L, R, LR, RR]) ReserveRegions(others []*ResultRegion[L, R, LR, RR]) {
	oks := make([]LR, len(others))
	errs := make([]RR, len(others))

	for i, o := range others {
		oks[i] = o.ok
		errs[i] = o.err
	}

	r.ok.ReserveRegions(oks)
	r.err.ReserveRegions(errs)
}

// HeapSize reports both branch regions' allocations.
func (r *ResultRegion[L, R, LR, RR]) HeapSize(cb func(usedBytes, capacityBytes uintptr)) {
	r.ok.HeapSize(cb)
	r.err.HeapSize(cb)
}
