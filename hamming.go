package hamming

import "unsafe"

// Distance returns the number of positions at which a and b differ.
// It fails with *ErrLengthMismatch if the slices have different lengths.
func Distance[S ~[]E, E comparable](a, b S) (int, error) {
	if len(a) != len(b) {
		return 0, &ErrLengthMismatch{Left: len(a), Right: len(b)}
	}
	if sameSlice(a, b) {
		return 0, nil
	}

	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d, nil
}

// DistanceString returns the number of byte positions at which a and b differ.
// Strings are compared byte by byte; pass []rune to Distance for code point
// comparison.
func DistanceString(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, &ErrLengthMismatch{Left: len(a), Right: len(b)}
	}
	if sameString(a, b) {
		return 0, nil
	}

	d := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d, nil
}

// sameSlice reports whether a and b are views of the same memory.
func sameSlice[S ~[]E, E any](a, b S) bool {
	return len(a) == len(b) && len(a) > 0 && unsafe.SliceData([]E(a)) == unsafe.SliceData([]E(b))
}

func sameString(a, b string) bool {
	return len(a) == len(b) && len(a) > 0 && unsafe.StringData(a) == unsafe.StringData(b)
}
