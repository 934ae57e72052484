//go:build unix

package columnation

import "golang.org/x/sys/unix"

// defaultLimitBytes is the byte budget used by WithDefaultLimit. It is a
// whole multiple of the OS page size: a buffer sized to whole pages is friendlier to the OS's
// own memory management than an arbitrary constant, even though nothing
// here is mmap'd directly. Non-unix platforms fall back to a fixed
// constant in stable_region_other.go, since golang.org/x/sys/unix has no
// Getpagesize there.
func defaultLimitBytes() int {
	pageSize := unix.Getpagesize()
	if pageSize <= 0 {
		return fallbackDefaultLimitBytes
	}

	// Round down to whole pages within 2 MiB, but at least one page.
	const target = 2 << 20

	pages := target / pageSize
	if pages < 1 {
		pages = 1
	}

	return pages * pageSize
}
