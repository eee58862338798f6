package transform

// Kind selects the 1D transform family applied along one axis of a
// block.
type Kind int

const (
	// DCT is the cosine-based transform, available at all sizes.
	DCT Kind = iota
	// ADST is the asymmetric sine-based transform, available at widths
	// 4, 8 and 16 only.
	ADST
)

// String returns the name of the transform kind.
func (k Kind) String() string {
	switch k {
	case DCT:
		return "DCT"
	case ADST:
		return "ADST"
	default:
		return "Unknown"
	}
}

// apply1D runs one 1D kernel over data. An all-zero tail after the DC
// coefficient selects the closed-form fast path; both shortcuts are
// bit-identical to the full network.
func apply1D(kind Kind, n int, data []int32) {
	dcOnly := true
	for _, v := range data[1:] {
		if v != 0 {
			dcOnly = false
			break
		}
	}

	switch kind {
	case DCT:
		if dcOnly {
			InverseDCTDCOnly(n, data)
			return
		}
		InverseDCT(n, data)
	case ADST:
		if dcOnly {
			InverseADSTDCOnly(n, data)
			return
		}
		InverseADST(n, data)
	default:
		panic("transform: unknown transform kind")
	}
}

// Inverse2D performs the 2D inverse transform of one square coefficient
// block (8.7.2), in place: the row kernel over every row, the column
// kernel over every column, then a rounding shift by Min(6, n+2) on
// every sample. block holds 1<<(2n) row-major dequantized coefficients
// on entry and the spatial residual on return.
//
// Mis-sized blocks and ADST at width 32 are programming errors and
// panic; they cannot occur for validly parsed bitstream data.
func Inverse2D(n int, rowKind, colKind Kind, block []int32) {
	size := 1 << n
	if len(block) != size*size {
		panic("transform: block length does not match transform size")
	}
	if n == 5 && (rowKind == ADST || colKind == ADST) {
		panic("transform: inverse ADST size must be 4, 8 or 16")
	}

	// Row transforms.
	for i := 0; i < size; i++ {
		apply1D(rowKind, n, block[i*size:(i+1)*size])
	}

	// Column transforms, through a scratch column, with the final
	// residual rounding.
	shift := uint(n + 2)
	if shift > 6 {
		shift = 6
	}
	var scratch [32]int32
	col := scratch[:size]
	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			col[i] = block[i*size+j]
		}
		apply1D(colKind, n, col)
		for i := 0; i < size; i++ {
			block[i*size+j] = roundShift(col[i], shift)
		}
	}
}

// InverseWHT2D performs the 2D inverse Walsh-Hadamard transform of one
// 4x4 lossless block, in place: rows with shift 2, columns with shift
// 0, no final rounding.
func InverseWHT2D(block []int32) {
	if len(block) != 16 {
		panic("transform: block length does not match transform size")
	}

	for i := 0; i < 4; i++ {
		InverseWHT4(block[i*4:(i+1)*4], 2)
	}

	var col [4]int32
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			col[i] = block[i*4+j]
		}
		InverseWHT4(col[:], 0)
		for i := 0; i < 4; i++ {
			block[i*4+j] = col[i]
		}
	}
}
