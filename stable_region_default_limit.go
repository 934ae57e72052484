package columnation

// fallbackDefaultLimitBytes is the constant used when the platform-specific
// page size cannot be determined.
const fallbackDefaultLimitBytes = 2 << 20 // 2 MiB

// WithDefaultLimit caps a StableRegion's per-buffer element count so that
// one buffer occupies roughly defaultLimitBytes (a page-aligned ~2 MiB on
// unix, a fixed 2 MiB elsewhere). Unlike WithLimit, the element count is
// derived from T's size, not supplied by the caller. Elements larger than
// the byte budget still get a buffer sized for at least one element.
func WithDefaultLimit[T any]() Option[T] {
	return func(r *StableRegion[T]) error {
		elemSize := sizeOf[T]()
		if elemSize == 0 {
			return nil
		}

		n := defaultLimitBytes() / int(elemSize)
		if n < 1 {
			n = 1
		}

		r.limit = n

		return nil
	}
}
