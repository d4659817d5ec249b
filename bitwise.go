package hamming

import "encoding/binary"

// Integer is satisfied by every fixed-width signed and unsigned integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Bitwise returns the number of bit positions at which a and b differ.
//
// The bit width is the width of T and negative values are taken as their
// two's-complement pattern, so Bitwise[int32](-1, 0) is 32 while
// Bitwise[int64](-1, 0) is 64. The loop runs once per differing bit.
func Bitwise[T Integer](a, b T) int {
	x := a ^ b
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}

// BitwiseBytes returns the number of differing bits between two packed
// binary codes of equal length.
func BitwiseBytes(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, &ErrLengthMismatch{Left: len(a), Right: len(b)}
	}
	if sameSlice(a, b) {
		return 0, nil
	}

	total := 0
	i := 0
	for ; i+8 <= len(a); i += 8 {
		total += Bitwise(binary.LittleEndian.Uint64(a[i:]), binary.LittleEndian.Uint64(b[i:]))
	}
	for ; i < len(a); i++ {
		total += Bitwise(a[i], b[i])
	}
	return total, nil
}
