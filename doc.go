// Package hamming computes Hamming distances between sequences and integers.
//
// # Sequences
//
// Distance counts the positions at which two equal-length sequences differ.
// Any slice of comparable elements works, strings are compared byte by byte:
//
//	d, err := hamming.DistanceString("karolin", "kathrin") // 3, nil
//	d, err = hamming.Distance([]rune("héllo"), []rune("hallo")) // 1, nil
//	_, err = hamming.DistanceString("abc", "ab") // *ErrLengthMismatch
//
// NormalizedDistance accepts sequences of different lengths. It compares the
// shorter sequence against the prefix of the longer one, counts the length
// gap as mismatches and divides by the longer length:
//
//	hamming.NormalizedDistanceString("ab", "abc")   // 1/3
//	hamming.NormalizedSimilarityString("ab", "abc") // 2/3
//
// # Bits
//
// Bitwise counts the differing bits of two integers. The width is the width
// of the operand type:
//
//	hamming.Bitwise(1, 2)               // 2
//	hamming.Bitwise[int32](-1, 0)       // 32
//	hamming.Bitwise[uint8](0xF0, 0x0F)  // 8
//
// BitwiseBytes does the same for packed binary codes and BitmapDistance for
// roaring bitmaps of any width.
//
// All functions are pure and safe for concurrent use.
package hamming
