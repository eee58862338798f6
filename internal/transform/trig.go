// Package transform implements the inverse frequency transforms used to
// reconstruct VP9 spatial residuals (8.7.1).
//
// Two transform families are provided:
// - inverse DCT for widths 4, 8, 16 and 32
// - inverse ADST for widths 4, 8 and 16
// plus the 4-point inverse Walsh-Hadamard transform for the lossless
// path and the row/column 2D drivers.
//
// All kernels operate in place on caller-owned []int32 blocks and keep
// no state: independent blocks may be transformed concurrently. The
// fixed-point rounding makes the operation sequences non-associative, so
// the kernels preserve the reference operation order exactly.
package transform

import "math/bits"

// cos64Lookup holds cos(i*pi/64) in Q14 for one quadrant (8.7.1).
var cos64Lookup = [33]int64{
	16384, 16364, 16305, 16207, 16069, 15893, 15679, 15426,
	15137, 14811, 14449, 14053, 13623, 13160, 12665, 12140,
	11585, 11003, 10394, 9760, 9102, 8423, 7723, 7005,
	6270, 5520, 4756, 3981, 3196, 2404, 1606, 804,
	0,
}

// cos64 extends the quadrant table to the full period by symmetry.
func cos64(angle uint8) int64 {
	angle &= 127
	switch {
	case angle <= 32:
		return cos64Lookup[angle]
	case angle <= 64:
		return -cos64Lookup[64-angle]
	case angle <= 96:
		return -cos64Lookup[angle-64]
	default:
		return cos64Lookup[128-angle]
	}
}

// sin64 is cos64 shifted a quarter period. Adding a full period first
// keeps the argument unsigned for angles below 32.
func sin64(angle uint8) int64 {
	if angle < 32 {
		angle += 128
	}
	return cos64(angle - 32)
}

// round2 is an arithmetic right shift by 14 with round-half-up bias.
// Every rounding in the rotation primitives is by 14, the Q14 scale of
// the tables.
func round2(x int64) int32 {
	return int32((x + (1 << 13)) >> 14)
}

// roundShift rounds x down by n bits with round-half-up bias.
func roundShift(x int32, n uint) int32 {
	return int32((int64(x) + 1<<(n-1)) >> n)
}

// brev reverses the low n bits of i.
func brev(n, i int) int {
	return int(bits.Reverse8(uint8(i)) >> (8 - n))
}

// butterfly performs the rotation B(a, b, angle, 0) (8.7.1.1) from src
// into dst. dst and src must not alias.
func butterfly(dst []int32, outA, outB int, src []int32, inA, inB int, angle uint8) {
	c := cos64(angle)
	s := sin64(angle)
	dst[outA] = round2(int64(src[inA])*c - int64(src[inB])*s)
	dst[outB] = round2(int64(src[inA])*s + int64(src[inB])*c)
}

// butterflyFlip is butterfly with the flip argument of B: the two
// results land in swapped destination slots.
func butterflyFlip(dst, src []int32, a, b int, angle uint8, flip bool) {
	if flip {
		butterfly(dst, b, a, src, a, b, angle)
	} else {
		butterfly(dst, a, b, src, a, b, angle)
	}
}

// butterflyInPlace rotates two slots of data through a two-element
// temporary.
func butterflyInPlace(data []int32, a, b int, angle uint8, flip bool) {
	var tmp [2]int32
	if flip {
		butterfly(tmp[:], 1, 0, data, a, b, angle)
	} else {
		butterfly(tmp[:], 0, 1, data, a, b, angle)
	}
	data[a] = tmp[0]
	data[b] = tmp[1]
}

// hadamard performs H(a, b, 0) (8.7.1.1): exact sum and difference, no
// rounding. dst and src must not alias.
func hadamard(dst, src []int32, a, b int) {
	x := src[a]
	y := src[b]
	dst[a] = x + y
	dst[b] = x - y
}

func hadamardInPlace(data []int32, a, b int) {
	x := data[a]
	y := data[b]
	data[a] = x + y
	data[b] = x - y
}
