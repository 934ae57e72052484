//go:build !unix

package columnation

// defaultLimitBytes is the non-unix fallback: golang.org/x/sys/unix has no
// Getpagesize on this build, so a fixed ~2 MiB constant is used directly.
func defaultLimitBytes() int {
	return fallbackDefaultLimitBytes
}
