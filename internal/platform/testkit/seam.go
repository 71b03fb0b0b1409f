package testkit

import "testing"

// Swap replaces a package-level seam (usually a func var such as a parser or clock)
// for the rest of the test; t.Cleanup puts the original back
// seams swapped this way must not be read by parallel tests of the same package
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}
