package transform

// The inverse DCT (8.7.1.3) is defined recursively on the block size,
// but the recursion is flattened here into one dependency-ordered
// function per size, alternating between two temporary arrays. The step
// comments name the defining step number and the size of the transform
// on the recursion stack it belongs to.
//
// The input bit-reversal permutation (8.7.1.2) is folded into the first
// butterfly stage's read indices, so the kernels take unpermuted
// coefficients.

// idctInputButterfly reads its inputs through the n-bit reversal of the
// output indices.
func idctInputButterfly(dst, src []int32, n, a, b int, angle uint8, flip bool) {
	ia := brev(n, a)
	ib := brev(n, b)
	if flip {
		butterfly(dst, b, a, src, ia, ib, angle)
	} else {
		butterfly(dst, a, b, src, ia, ib, angle)
	}
}

// InverseDCT performs an in-place inverse DCT on the first 1<<n
// elements of data, for n in 2..5. Any other size is a programming
// error and panics.
func InverseDCT(n int, data []int32) {
	switch n {
	case 2:
		inverseDCT4(data)
	case 3:
		inverseDCT8(data)
	case 4:
		inverseDCT16(data)
	case 5:
		inverseDCT32(data)
	default:
		panic("transform: inverse DCT size must be 4, 8, 16 or 32")
	}
}

// InverseDCTDCOnly is the closed form of InverseDCT when only
// coefficient 0 is non-zero: the DC value broadcast to every slot. The
// network is flipped, so the DC term uses sin64 rather than cos64.
func InverseDCTDCOnly(n int, data []int32) {
	if n < 2 || n > 5 {
		panic("transform: inverse DCT size must be 4, 8, 16 or 32")
	}
	dc := round2(int64(data[0]) * sin64(16))
	for i := 0; i < 1<<n; i++ {
		data[i] = dc
	}
}

func inverseDCT4(data []int32) {
	var t1 [4]int32
	// Step 1 - size 4
	idctInputButterfly(t1[:], data, 2, 0, 1, 16, true)
	// Step 2 - size 4
	idctInputButterfly(t1[:], data, 2, 2, 3, 24, false)

	// Step 7 - size 4
	hadamard(data, t1[:], 0, 3)
	hadamard(data, t1[:], 1, 2)
}

func inverseDCT8(data []int32) {
	var t1, t2 [8]int32
	//   Step 1 - size 4
	idctInputButterfly(t1[:], data, 3, 0, 1, 16, true)
	//   Step 2 - size 4
	idctInputButterfly(t1[:], data, 3, 2, 3, 24, false)
	// Step 2 - size 8
	idctInputButterfly(t1[:], data, 3, 4, 7, 28, false)
	idctInputButterfly(t1[:], data, 3, 5, 6, 12, false)

	//   Step 7 - size 4
	hadamard(t2[:], t1[:], 0, 3)
	hadamard(t2[:], t1[:], 1, 2)
	// Step 3 - size 8
	hadamard(t2[:], t1[:], 4, 5)
	hadamard(t2[:], t1[:], 7, 6)

	copy(t1[:], t2[:])
	// Step 6 - size 8
	butterflyFlip(t1[:], t2[:], 6, 5, 16, true)

	// Step 7 - size 8
	hadamard(data, t1[:], 0, 7)
	hadamard(data, t1[:], 1, 6)
	hadamard(data, t1[:], 2, 5)
	hadamard(data, t1[:], 3, 4)
}

func inverseDCT16(data []int32) {
	var t1, t2 [16]int32

	//     Step 1 - size 4
	idctInputButterfly(t1[:], data, 4, 0, 1, 16, true)
	//     Step 2 - size 4
	idctInputButterfly(t1[:], data, 4, 2, 3, 24, false)
	//   Step 2 - size 8
	idctInputButterfly(t1[:], data, 4, 4, 7, 28, false)
	idctInputButterfly(t1[:], data, 4, 5, 6, 12, false)
	// Step 2 - size 16
	idctInputButterfly(t1[:], data, 4, 8, 15, 30, false)
	idctInputButterfly(t1[:], data, 4, 9, 14, 14, false)
	idctInputButterfly(t1[:], data, 4, 10, 13, 22, false)
	idctInputButterfly(t1[:], data, 4, 11, 12, 6, false)

	//     Step 7 - size 4
	hadamard(t2[:], t1[:], 0, 3)
	hadamard(t2[:], t1[:], 1, 2)
	//   Step 3 - size 8
	hadamard(t2[:], t1[:], 4, 5)
	hadamard(t2[:], t1[:], 7, 6)
	// Step 3 - size 16
	hadamard(t2[:], t1[:], 8, 9)
	hadamard(t2[:], t1[:], 11, 10)
	hadamard(t2[:], t1[:], 12, 13)
	hadamard(t2[:], t1[:], 15, 14)

	copy(t1[:], t2[:])
	//   Step 6 - size 8
	butterflyFlip(t1[:], t2[:], 6, 5, 16, true)
	// Step 5a - size 16
	butterflyFlip(t1[:], t2[:], 14, 9, 24, true)
	butterflyFlip(t1[:], t2[:], 10, 13, 72, true)

	//   Step 7 - size 8
	hadamard(t2[:], t1[:], 0, 7)
	hadamard(t2[:], t1[:], 1, 6)
	hadamard(t2[:], t1[:], 2, 5)
	hadamard(t2[:], t1[:], 3, 4)
	// Step 5b - size 16
	hadamard(t2[:], t1[:], 8, 11)
	hadamard(t2[:], t1[:], 15, 12)
	hadamard(t2[:], t1[:], 9, 10)
	hadamard(t2[:], t1[:], 14, 13)

	copy(t1[:], t2[:])
	// Step 6 - size 16
	butterflyFlip(t1[:], t2[:], 13, 10, 16, true)
	butterflyFlip(t1[:], t2[:], 12, 11, 16, true)

	// Step 7 - size 16
	hadamard(data, t1[:], 0, 15)
	hadamard(data, t1[:], 1, 14)
	hadamard(data, t1[:], 2, 13)
	hadamard(data, t1[:], 3, 12)
	hadamard(data, t1[:], 4, 11)
	hadamard(data, t1[:], 5, 10)
	hadamard(data, t1[:], 6, 9)
	hadamard(data, t1[:], 7, 8)
}

func inverseDCT32(data []int32) {
	var t1, t2 [32]int32

	//       Step 1 - size 4
	idctInputButterfly(t1[:], data, 5, 0, 1, 16, true)
	//       Step 2 - size 4
	idctInputButterfly(t1[:], data, 5, 2, 3, 24, false)
	//     Step 2 - size 8
	idctInputButterfly(t1[:], data, 5, 4, 7, 28, false)
	idctInputButterfly(t1[:], data, 5, 5, 6, 12, false)
	//   Step 2 - size 16
	idctInputButterfly(t1[:], data, 5, 8, 15, 30, false)
	idctInputButterfly(t1[:], data, 5, 9, 14, 14, false)
	idctInputButterfly(t1[:], data, 5, 10, 13, 22, false)
	idctInputButterfly(t1[:], data, 5, 11, 12, 6, false)
	// Step 2 - size 32
	idctInputButterfly(t1[:], data, 5, 16, 31, 31, false)
	idctInputButterfly(t1[:], data, 5, 17, 30, 15, false)
	idctInputButterfly(t1[:], data, 5, 18, 29, 23, false)
	idctInputButterfly(t1[:], data, 5, 19, 28, 7, false)
	idctInputButterfly(t1[:], data, 5, 20, 27, 27, false)
	idctInputButterfly(t1[:], data, 5, 21, 26, 11, false)
	idctInputButterfly(t1[:], data, 5, 22, 25, 19, false)
	idctInputButterfly(t1[:], data, 5, 23, 24, 3, false)

	//       Step 7 - size 4
	hadamard(t2[:], t1[:], 0, 3)
	hadamard(t2[:], t1[:], 1, 2)
	//     Step 3 - size 8
	hadamard(t2[:], t1[:], 4, 5)
	hadamard(t2[:], t1[:], 7, 6)
	//   Step 3 - size 16
	hadamard(t2[:], t1[:], 8, 9)
	hadamard(t2[:], t1[:], 11, 10)
	hadamard(t2[:], t1[:], 12, 13)
	hadamard(t2[:], t1[:], 15, 14)
	// Step 3 - size 32
	hadamard(t2[:], t1[:], 16, 17)
	hadamard(t2[:], t1[:], 19, 18)
	hadamard(t2[:], t1[:], 20, 21)
	hadamard(t2[:], t1[:], 23, 22)
	hadamard(t2[:], t1[:], 24, 25)
	hadamard(t2[:], t1[:], 27, 26)
	hadamard(t2[:], t1[:], 28, 29)
	hadamard(t2[:], t1[:], 31, 30)

	copy(t1[:], t2[:])
	//     Step 6 - size 8
	butterflyFlip(t1[:], t2[:], 6, 5, 16, true)
	//   Step 5a - size 16
	butterflyFlip(t1[:], t2[:], 14, 9, 24, true)
	butterflyFlip(t1[:], t2[:], 10, 13, 72, true)
	// Step 4a - size 32
	butterflyFlip(t1[:], t2[:], 30, 17, 28, true)
	butterflyFlip(t1[:], t2[:], 22, 25, 84, true)
	butterflyFlip(t1[:], t2[:], 26, 21, 12, true)
	butterflyFlip(t1[:], t2[:], 18, 29, 68, true)

	//     Step 7 - size 8
	hadamard(t2[:], t1[:], 0, 7)
	hadamard(t2[:], t1[:], 1, 6)
	hadamard(t2[:], t1[:], 2, 5)
	hadamard(t2[:], t1[:], 3, 4)
	//   Step 5b - size 16
	hadamard(t2[:], t1[:], 8, 11)
	hadamard(t2[:], t1[:], 15, 12)
	hadamard(t2[:], t1[:], 9, 10)
	hadamard(t2[:], t1[:], 14, 13)
	// Step 4b - size 32
	hadamard(t2[:], t1[:], 16, 19)
	hadamard(t2[:], t1[:], 23, 20)
	hadamard(t2[:], t1[:], 24, 27)
	hadamard(t2[:], t1[:], 31, 28)
	hadamard(t2[:], t1[:], 17, 18)
	hadamard(t2[:], t1[:], 22, 21)
	hadamard(t2[:], t1[:], 25, 26)
	hadamard(t2[:], t1[:], 30, 29)

	copy(t1[:], t2[:])
	//   Step 6 - size 16
	butterflyFlip(t1[:], t2[:], 13, 10, 16, true)
	butterflyFlip(t1[:], t2[:], 12, 11, 16, true)
	// Step 5a - size 32
	butterflyFlip(t1[:], t2[:], 29, 18, 24, true)
	butterflyFlip(t1[:], t2[:], 21, 26, 72, true)
	butterflyFlip(t1[:], t2[:], 28, 19, 24, true)
	butterflyFlip(t1[:], t2[:], 20, 27, 72, true)

	//   Step 7 - size 16
	hadamard(t2[:], t1[:], 0, 15)
	hadamard(t2[:], t1[:], 1, 14)
	hadamard(t2[:], t1[:], 2, 13)
	hadamard(t2[:], t1[:], 3, 12)
	hadamard(t2[:], t1[:], 4, 11)
	hadamard(t2[:], t1[:], 5, 10)
	hadamard(t2[:], t1[:], 6, 9)
	hadamard(t2[:], t1[:], 7, 8)
	// Step 5b - size 32
	hadamard(t2[:], t1[:], 16, 23)
	hadamard(t2[:], t1[:], 31, 24)
	hadamard(t2[:], t1[:], 17, 22)
	hadamard(t2[:], t1[:], 30, 25)
	hadamard(t2[:], t1[:], 18, 21)
	hadamard(t2[:], t1[:], 29, 26)
	hadamard(t2[:], t1[:], 19, 20)
	hadamard(t2[:], t1[:], 28, 27)

	copy(t1[:], t2[:])
	// Step 6 - size 32
	butterflyFlip(t1[:], t2[:], 27, 20, 16, true)
	butterflyFlip(t1[:], t2[:], 26, 21, 16, true)
	butterflyFlip(t1[:], t2[:], 25, 22, 16, true)
	butterflyFlip(t1[:], t2[:], 24, 23, 16, true)

	// Step 7 - size 32
	hadamard(data, t1[:], 0, 31)
	hadamard(data, t1[:], 1, 30)
	hadamard(data, t1[:], 2, 29)
	hadamard(data, t1[:], 3, 28)
	hadamard(data, t1[:], 4, 27)
	hadamard(data, t1[:], 5, 26)
	hadamard(data, t1[:], 6, 25)
	hadamard(data, t1[:], 7, 24)
	hadamard(data, t1[:], 8, 23)
	hadamard(data, t1[:], 9, 22)
	hadamard(data, t1[:], 10, 21)
	hadamard(data, t1[:], 11, 20)
	hadamard(data, t1[:], 12, 19)
	hadamard(data, t1[:], 13, 18)
	hadamard(data, t1[:], 14, 17)
	hadamard(data, t1[:], 15, 16)
}
