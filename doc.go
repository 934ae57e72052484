// Package columnation implements a columnar arena for heterogeneous, owned
// record types.
//
// Copying a record with [ColumnStack.Copy] relocates every owned interior
// allocation it holds — vector backing arrays, string bytes, nested tuples
// and options of the same — into a small number of large, type-specialized
// backing buffers instead of leaving each one as its own independent
// allocation. Copying N records becomes O(N) appends into a handful of
// contiguous buffers rather than O(N times the number of interior
// allocations) individual ones, and discarding all of them is a single
// O(1) length reset rather than N individual frees.
//
// # Safety model
//
// Every replica produced by a [Region] is only ever reachable by reference,
// through the [ColumnStack] that owns it. Its interior slices and strings
// are always sized with len == cap, which is what keeps a caller from
// corrupting a neighboring record by accident: Go's append always
// reallocates once len reaches cap, so it can only ever detach the replica
// from the arena, never write past it.
//
// Reading from a replica after the owning ColumnStack's Clear (or after it
// is dropped) is undefined: the backing buffers may have been reused or
// released. The package does not, and cannot, prevent this; it is a safety
// requirement on the caller.
//
// # Layers
//
//   - [StableRegion] is a growing family of buffers whose elements never
//     move once written, until [StableRegion.Clear].
//   - [Region] is the per-type strategy for absorbing one record's owned
//     interior storage; [CopyRegion], [OptionRegion], [ResultRegion],
//     [VecRegion], [StringStack] and the TupleN regions are its
//     implementations.
//   - [ColumnStack] is the append-only, user-facing container that pairs a
//     surface buffer of T with T's Region.
package columnation
