package hamming

// NormalizedDistance returns the dissimilarity of a and b in [0, 1].
//
// The slices may differ in length. The shorter one is compared position by
// position against the prefix of the longer one, and every trailing element
// of the longer slice counts as a mismatch. The total is divided by the
// length of the longer slice. No alignment is searched for, so a shifted copy
// scores as distant. Two empty slices have distance 0.
func NormalizedDistance[S ~[]E, E comparable](a, b S) float64 {
	if sameSlice(a, b) {
		return 0
	}

	short, long := a, b
	if len(a) > len(b) {
		short, long = b, a
	}
	if len(long) == 0 {
		return 0
	}

	d := len(long) - len(short)
	for i := range short {
		if short[i] != long[i] {
			d++
		}
	}
	return float64(d) / float64(len(long))
}

// NormalizedDistanceString is NormalizedDistance over the bytes of a and b.
func NormalizedDistanceString(a, b string) float64 {
	if sameString(a, b) {
		return 0
	}

	short, long := a, b
	if len(a) > len(b) {
		short, long = b, a
	}
	if len(long) == 0 {
		return 0
	}

	d := len(long) - len(short)
	for i := 0; i < len(short); i++ {
		if short[i] != long[i] {
			d++
		}
	}
	return float64(d) / float64(len(long))
}

// NormalizedSimilarity returns 1 - NormalizedDistance(a, b).
func NormalizedSimilarity[S ~[]E, E comparable](a, b S) float64 {
	return 1 - NormalizedDistance(a, b)
}

// NormalizedSimilarityString returns 1 - NormalizedDistanceString(a, b).
func NormalizedSimilarityString(a, b string) float64 {
	return 1 - NormalizedDistanceString(a, b)
}
