package transform

import (
	"math/rand"
	"testing"
)

func TestKindString(t *testing.T) {
	if DCT.String() != "DCT" || ADST.String() != "ADST" {
		t.Errorf("got %q and %q", DCT.String(), ADST.String())
	}
	if Kind(99).String() != "Unknown" {
		t.Errorf("got %q for out-of-range kind", Kind(99).String())
	}
}

func TestInverse2D_ZeroBlock(t *testing.T) {
	kinds := []Kind{DCT, ADST}
	for n := 2; n <= 5; n++ {
		size := 1 << n
		for _, rk := range kinds {
			for _, ck := range kinds {
				if n == 5 && (rk == ADST || ck == ADST) {
					continue
				}
				block := make([]int32, size*size)
				Inverse2D(n, rk, ck, block)
				for i, v := range block {
					if v != 0 {
						t.Fatalf("size %d %v/%v index %d: got %d, want 0",
							size, rk, ck, i, v)
					}
				}
			}
		}
	}
}

// A lone Q14 DC coefficient reconstructs to a flat residual whose level
// depends only on the final rounding shift: one full pass lands on
// 11585, the second on 8192, and the shift of Min(6, n+2) scales that
// down per size.
func TestInverse2D_DCGolden(t *testing.T) {
	tests := []struct {
		n    int
		want int32
	}{
		{2, 512},
		{3, 256},
		{4, 128},
		{5, 128},
	}

	for _, tt := range tests {
		size := 1 << tt.n
		block := make([]int32, size*size)
		block[0] = 16384
		Inverse2D(tt.n, DCT, DCT, block)
		for i, v := range block {
			if v != tt.want {
				t.Fatalf("size %d index %d: got %d, want %d", size, i, v, tt.want)
			}
		}
	}
}

// inverse2DReference is the row-column driver with the fast paths
// disabled. Inverse2D must match it bit for bit on any input.
func inverse2DReference(n int, rowKind, colKind Kind, block []int32) {
	size := 1 << n
	full := func(kind Kind, data []int32) {
		if kind == DCT {
			InverseDCT(n, data)
		} else {
			InverseADST(n, data)
		}
	}

	for i := 0; i < size; i++ {
		full(rowKind, block[i*size:(i+1)*size])
	}

	shift := uint(n + 2)
	if shift > 6 {
		shift = 6
	}
	col := make([]int32, size)
	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			col[i] = block[i*size+j]
		}
		full(colKind, col)
		for i := 0; i < size; i++ {
			block[i*size+j] = roundShift(col[i], shift)
		}
	}
}

func TestInverse2D_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	kinds := []Kind{DCT, ADST}

	for n := 2; n <= 5; n++ {
		size := 1 << n
		for _, rk := range kinds {
			for _, ck := range kinds {
				if n == 5 && (rk == ADST || ck == ADST) {
					continue
				}
				input := make([]int32, size*size)
				// Sparse blocks exercise the DC-only and zero shortcuts,
				// dense ones the full kernels.
				for _, density := range []int{1, size, size * size} {
					for i := range input {
						input[i] = 0
					}
					for k := 0; k < density; k++ {
						input[rng.Intn(size*size)] = int32(rng.Intn(16384) - 8192)
					}

					got := make([]int32, size*size)
					copy(got, input)
					Inverse2D(n, rk, ck, got)

					want := make([]int32, size*size)
					copy(want, input)
					inverse2DReference(n, rk, ck, want)

					for i := range want {
						if got[i] != want[i] {
							t.Fatalf("size %d %v/%v density %d index %d: got %d, want %d",
								size, rk, ck, density, i, got[i], want[i])
						}
					}
				}
			}
		}
	}
}

func TestInverse2D_Panics(t *testing.T) {
	t.Run("bad length", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("mis-sized block did not panic")
			}
		}()
		Inverse2D(3, DCT, DCT, make([]int32, 16))
	})

	t.Run("adst at 32", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("ADST at width 32 did not panic")
			}
		}()
		Inverse2D(5, ADST, DCT, make([]int32, 1024))
	})
}

func TestInverseWHT4(t *testing.T) {
	tests := []struct {
		name  string
		input []int32
		shift uint
		want  []int32
	}{
		{"dc unshifted", []int32{4, 0, 0, 0}, 0, []int32{2, 2, 2, 2}},
		{"dc shift two", []int32{16, 0, 0, 0}, 2, []int32{2, 2, 2, 2}},
		{"mixed", []int32{10, 5, 3, 1}, 0, []int32{10, 5, 1, 3}},
		{"zero", []int32{0, 0, 0, 0}, 0, []int32{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]int32, 4)
			copy(data, tt.input)
			InverseWHT4(data, tt.shift)
			for i := range tt.want {
				if data[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", data, tt.want)
				}
			}
		})
	}
}

func TestInverseWHT2D_DC(t *testing.T) {
	block := make([]int32, 16)
	block[0] = 16
	InverseWHT2D(block)
	for i, v := range block {
		if v != 1 {
			t.Fatalf("index %d: got %d, want 1", i, v)
		}
	}
}

func TestInverseWHT2D_Zero(t *testing.T) {
	block := make([]int32, 16)
	InverseWHT2D(block)
	for i, v := range block {
		if v != 0 {
			t.Fatalf("index %d: got %d, want 0", i, v)
		}
	}
}

func TestInverseWHT2D_PanicOnBadLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("mis-sized block did not panic")
		}
	}()
	InverseWHT2D(make([]int32, 15))
}

func BenchmarkInverse2D_DCT32(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	input := make([]int32, 1024)
	for i := range input {
		input[i] = int32(rng.Intn(16384) - 8192)
	}
	block := make([]int32, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(block, input)
		Inverse2D(5, DCT, DCT, block)
	}
}

func BenchmarkInverse2D_ADST16(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	input := make([]int32, 256)
	for i := range input {
		input[i] = int32(rng.Intn(16384) - 8192)
	}
	block := make([]int32, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(block, input)
		Inverse2D(4, ADST, ADST, block)
	}
}

func BenchmarkInverseWHT2D(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	input := make([]int32, 16)
	for i := range input {
		input[i] = int32(rng.Intn(256) - 128)
	}
	block := make([]int32, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(block, input)
		InverseWHT2D(block)
	}
}
