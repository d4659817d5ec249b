package hamming

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// BitmapDistance returns the number of positions set in exactly one of a and
// b, the Hamming distance of two bit patterns of unbounded width.
// A nil bitmap is the empty set. Neither input is modified.
func BitmapDistance(a, b *roaring.Bitmap) uint64 {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return b.GetCardinality()
	case b == nil:
		return a.GetCardinality()
	case a == b:
		return 0
	}
	return a.OrCardinality(b) - a.AndCardinality(b)
}

// BitmapDistance64 is BitmapDistance for 64-bit positions.
func BitmapDistance64(a, b *roaring64.Bitmap) uint64 {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return b.GetCardinality()
	case b == nil:
		return a.GetCardinality()
	case a == b:
		return 0
	}
	return a.OrCardinality(b) - a.AndCardinality(b)
}
