package transform

// The inverse ADST (8.7.1.6 through 8.7.1.9) uses a distinct procedure
// per size. The 8- and 16-point variants run their butterfly rotations
// into a higher-precision int64 array S, which the rounding Hadamard
// steps fold back into the working array; signed integers with
// 24 + BitDepth bits are enough to avoid overflow there.

// Q14 sine constants for the 4-point closed form (8.7.1.6).
const (
	sinPi1_9 = 5283
	sinPi2_9 = 9929
	sinPi3_9 = 13377
	sinPi4_9 = 15212
)

// InverseADST performs an in-place inverse ADST on the first 1<<n
// elements of data, for n in 2..4. The 32-wide size has no ADST; any
// size outside 2..4 is a programming error and panics.
func InverseADST(n int, data []int32) {
	switch n {
	case 2:
		inverseADST4(data)
	case 3:
		inverseADST8(data)
	case 4:
		inverseADST16(data)
	default:
		panic("transform: inverse ADST size must be 4, 8 or 16")
	}
}

// InverseADSTDCOnly is the per-size fast path of InverseADST for inputs
// whose only non-zero coefficient is at index 0. Output is bit-identical
// to the general kernel on such input.
func InverseADSTDCOnly(n int, data []int32) {
	switch n {
	case 2:
		inverseADSTDCOnly4(data)
	case 3:
		inverseADSTDCOnly8(data)
	case 4:
		inverseADSTDCOnly16(data)
	default:
		panic("transform: inverse ADST size must be 4, 8 or 16")
	}
}

// adstInputPermutation applies the ADST input array permutation
// (8.7.1.4): even slots take the reversed input back-to-front, odd
// slots take the original even entries.
func adstInputPermutation(data []int32) {
	n := len(data)
	var tmp [16]int32
	copy(tmp[:n], data)
	for i := 0; i < n; i += 2 {
		data[i] = tmp[n-1-i]
		data[i+1] = tmp[i]
	}
}

// adstButterfly is the rotation SB(a, b, angle, 1) (8.7.1.1): like B
// but written unrounded into the higher-precision array S.
func adstButterfly(s []int64, data []int32, a, b int, angle uint8, flip bool) {
	c := cos64(angle)
	sn := sin64(angle)
	x := int64(data[a])*c - int64(data[b])*sn
	y := int64(data[a])*sn + int64(data[b])*c
	if flip {
		s[b], s[a] = x, y
	} else {
		s[a], s[b] = x, y
	}
}

// adstHadamard is SH(a, b): a Hadamard rotation with rounding that
// folds the high-precision intermediate back into the working array.
func adstHadamard(data []int32, s []int64, a, b int) {
	data[a] = round2(s[a] + s[b])
	data[b] = round2(s[a] - s[b])
}

// adstOutput applies the output permutation (8.7.1.5) and negates the
// fixed positions {1, 3, max-2, max}, which are all odd slots when n is
// 3. The
// closed form below reproduces the bit-interleave patterns the
// permutation is defined by for both sizes.
func adstOutput(dst, src []int32, n int) {
	size := 1 << n
	max := size - 1
	for to := 0; to < size; to++ {
		from := brev(n, to)
		from ^= (from << 1) & max
		v := src[from]
		if to == 1 || to == 3 || to == max-2 || to == max {
			v = -v
		}
		dst[to] = v
	}
}

// inverseADST4 is the closed form of 8.7.1.6: four weighted sums of the
// fixed sine constants, no rotation network.
func inverseADST4(data []int32) {
	s0 := sinPi1_9 * int64(data[0])
	s1 := sinPi2_9 * int64(data[0])
	s2 := sinPi3_9 * int64(data[1])
	s3 := sinPi4_9 * int64(data[2])
	s4 := sinPi1_9 * int64(data[2])
	s5 := sinPi2_9 * int64(data[3])
	s6 := sinPi4_9 * int64(data[3])
	s7 := sinPi3_9 * int64(data[0]-data[2]+data[3])

	x0 := s0 + s3 + s5
	x1 := s1 - s4 - s6
	x2 := s7
	x3 := s2

	data[0] = round2(x0 + x3)
	data[1] = round2(x1 + x3)
	data[2] = round2(x2)
	data[3] = round2(x0 + x1 - x3)
}

// inverseADST8 follows the ordered steps of 8.7.1.7.
func inverseADST8(data []int32) {
	var s [8]int64

	// Step 1: input array permutation, n = 3.
	adstInputPermutation(data[:8])

	// Step 2: SB( 2*i, 1+2*i, 30-8*i, 1 ) for i = 0..3.
	for i := 0; i < 4; i++ {
		adstButterfly(s[:], data, 2*i, 1+2*i, uint8(30-8*i), true)
	}
	// Step 3: SH( i, 4+i ) for i = 0..3.
	for i := 0; i < 4; i++ {
		adstHadamard(data, s[:], i, 4+i)
	}

	// Step 4: SB( 4+3*i, 5+i, 24-16*i, 1 ) for i = 0..1.
	for i := 0; i < 2; i++ {
		adstButterfly(s[:], data, 4+3*i, 5+i, uint8(24-16*i), true)
	}
	// Step 5: SH( 4+i, 6+i ) for i = 0..1.
	for i := 0; i < 2; i++ {
		adstHadamard(data, s[:], 4+i, 6+i)
	}

	// Step 6: H( i, 2+i, 0 ) for i = 0..1.
	for i := 0; i < 2; i++ {
		hadamardInPlace(data, i, 2+i)
	}
	// Step 7: B( 2+4*i, 3+4*i, 16, 1 ) for i = 0..1.
	for i := 0; i < 2; i++ {
		butterflyInPlace(data, 2+4*i, 3+4*i, 16, true)
	}

	// Steps 8-9: output permutation and negation, n = 3.
	var tmp [8]int32
	copy(tmp[:], data[:8])
	adstOutput(data, tmp[:], 3)
}

// inverseADST16 follows the ordered steps of 8.7.1.8.
func inverseADST16(data []int32) {
	var s [16]int64

	// Step 1: input array permutation, n = 4.
	adstInputPermutation(data[:16])

	// Step 2: SB( 2*i, 1+2*i, 31-4*i, 1 ) for i = 0..7.
	for i := 0; i < 8; i++ {
		adstButterfly(s[:], data, 2*i, 1+2*i, uint8(31-4*i), true)
	}
	// Step 3: SH( i, 8+i ) for i = 0..7.
	for i := 0; i < 8; i++ {
		adstHadamard(data, s[:], i, 8+i)
	}

	// Step 4: SB( 8+2*i, 9+2*i, 28-16*i, 1 ) for i = 0..3. The angle is
	// offset by a full period to stay unsigned.
	for i := 0; i < 4; i++ {
		adstButterfly(s[:], data, 8+2*i, 9+2*i, uint8(128+28-16*i), true)
	}
	// Step 5: SH( 8+i, 12+i ) for i = 0..3.
	for i := 0; i < 4; i++ {
		adstHadamard(data, s[:], 8+i, 12+i)
	}

	// Step 6: H( i, 4+i, 0 ) for i = 0..3.
	for i := 0; i < 4; i++ {
		hadamardInPlace(data, i, 4+i)
	}

	// Step 7: SB( 4+8*i+3*j, 5+8*i+j, 24-16*j, 1 ) for i = 0..1, j = 0..1.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			adstButterfly(s[:], data, 4+8*i+3*j, 5+8*i+j, uint8(24-16*j), true)
		}
	}
	// Step 8: SH( 4+8*j+i, 6+8*j+i ) for i = 0..1, j = 0..1.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			adstHadamard(data, s[:], 4+8*j+i, 6+8*j+i)
		}
	}

	// Step 9: H( 8*j+i, 2+8*j+i, 0 ) for i = 0..1, j = 0..1.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			hadamardInPlace(data, 8*j+i, 2+8*j+i)
		}
	}
	// Step 10: B( 2+4*j+8*i, 3+4*j+8*i, 48+64*(i^j), 0 ) for i = 0..1, j = 0..1.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			butterflyInPlace(data, 2+4*j+8*i, 3+4*j+8*i, uint8(48+64*(i^j)), false)
		}
	}

	// Steps 11-12: output permutation and negation, n = 4.
	var tmp [16]int32
	copy(tmp[:], data[:16])
	adstOutput(data, tmp[:], 4)
}

func inverseADSTDCOnly4(data []int32) {
	s0 := sinPi1_9 * int64(data[0])
	s1 := sinPi2_9 * int64(data[0])
	s2 := sinPi3_9 * int64(data[0])

	data[0] = round2(s0)
	data[1] = round2(s1)
	data[2] = round2(s2)
	data[3] = round2(s0 + s1)
}

func inverseADSTDCOnly8(data []int32) {
	var im [8]int32

	c := cos64(30)
	s := sin64(30)
	im[0] = round2(int64(data[0]) * c)
	im[1] = round2(-int64(data[0]) * s)

	c = cos64(16)
	s = sin64(16)
	im[2] = round2(int64(im[0])*s + int64(im[1])*c)
	im[3] = round2(int64(im[0])*c - int64(im[1])*s)

	c = cos64(24)
	s = sin64(24)
	im[4] = round2(int64(im[0])*s + int64(im[1])*c)
	im[5] = round2(int64(im[0])*c - int64(im[1])*s)

	c = cos64(16)
	s = sin64(16)
	im[6] = round2(int64(im[4])*s + int64(im[5])*c)
	im[7] = round2(int64(im[4])*c - int64(im[5])*s)

	adstOutput(data, im[:], 3)
}

func inverseADSTDCOnly16(data []int32) {
	var im [16]int32

	c := cos64(31)
	s := sin64(31)
	s0 := round2(int64(data[0]) * c)
	s1 := round2(-int64(data[0]) * s)
	im[0] = s0
	im[1] = s1

	c = cos64(48)
	s = sin64(48)
	im[2] = round2(int64(s0)*c - int64(s1)*s)
	im[3] = round2(int64(s0)*s + int64(s1)*c)

	c = cos64(24)
	s = sin64(24)
	s5 := round2(int64(s0)*c - int64(s1)*s)
	s4 := round2(int64(s0)*s + int64(s1)*c)
	im[4] = s4
	im[5] = s5

	c = cos64(112)
	s = sin64(112)
	im[6] = round2(int64(s4)*c - int64(s5)*s)
	im[7] = round2(int64(s4)*s + int64(s5)*c)

	c = cos64(28)
	s = sin64(28)
	s9 := round2(int64(s0)*c - int64(s1)*s)
	s8 := round2(int64(s0)*s + int64(s1)*c)
	im[8] = s8
	im[9] = s9

	c = cos64(112)
	s = sin64(112)
	im[10] = round2(int64(s8)*c - int64(s9)*s)
	im[11] = round2(int64(s8)*s + int64(s9)*c)

	c = cos64(24)
	s = sin64(24)
	s13 := round2(int64(s8)*c - int64(s9)*s)
	s12 := round2(int64(s8)*s + int64(s9)*c)
	im[12] = s12
	im[13] = s13

	c = cos64(48)
	s = sin64(48)
	im[14] = round2(int64(s12)*c - int64(s13)*s)
	im[15] = round2(int64(s12)*s + int64(s13)*c)

	adstOutput(data, im[:], 4)
}
