package transform

// InverseWHT4 performs the 4-point inverse Walsh-Hadamard transform
// used by the lossless coding path (8.7.1.10). The inputs are
// pre-scaled down by shift; the butterfly itself is exact integer
// arithmetic with no rounding.
func InverseWHT4(data []int32, shift uint) {
	a := data[0] >> shift
	c := data[1] >> shift
	d := data[2] >> shift
	b := data[3] >> shift

	a += c
	d -= b
	e := (a - d) >> 1
	b = e - b
	c = e - c
	a -= b
	d += c

	data[0] = a
	data[1] = b
	data[2] = c
	data[3] = d
}
