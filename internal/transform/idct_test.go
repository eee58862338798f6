package transform

import (
	"math/rand"
	"testing"
)

func TestInverseDCT4_Impulse(t *testing.T) {
	data := []int32{1, 0, 0, 0}
	InverseDCT(2, data)
	want := []int32{1, 1, 1, 1}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("got %v, want %v", data, want)
		}
	}
}

// A lone DC coefficient must come out of the full network as a constant
// vector, which is what the fast path computes directly.
func TestInverseDCT_DCOnlyMatchesGeneral(t *testing.T) {
	coeffs := []int32{0, 1, -1, 3, 255, -255, 8191, -8191, 16384, -16384}

	for n := 2; n <= 5; n++ {
		size := 1 << n
		for _, c := range coeffs {
			general := make([]int32, size)
			general[0] = c
			InverseDCT(n, general)

			fast := make([]int32, size)
			fast[0] = c
			InverseDCTDCOnly(n, fast)

			for i := 0; i < size; i++ {
				if general[i] != fast[i] {
					t.Fatalf("size %d coeff %d: index %d: general %d, fast %d",
						size, c, i, general[i], fast[i])
				}
			}
		}
	}
}

func TestInverseDCT_DCBroadcastValue(t *testing.T) {
	for n := 2; n <= 5; n++ {
		size := 1 << n
		data := make([]int32, size)
		data[0] = 16384
		InverseDCTDCOnly(n, data)
		for i := 0; i < size; i++ {
			if data[i] != 11585 {
				t.Fatalf("size %d index %d: got %d, want 11585", size, i, data[i])
			}
		}
	}
}

func TestInverseDCT_ZeroInput(t *testing.T) {
	for n := 2; n <= 5; n++ {
		size := 1 << n
		data := make([]int32, size)
		InverseDCT(n, data)
		for i, v := range data {
			if v != 0 {
				t.Fatalf("size %d index %d: got %d, want 0", size, i, v)
			}
		}
	}
}

func TestInverseDCT_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 2; n <= 5; n++ {
		size := 1 << n
		input := make([]int32, size)
		for i := range input {
			input[i] = int32(rng.Intn(16384) - 8192)
		}

		first := make([]int32, size)
		copy(first, input)
		InverseDCT(n, first)

		second := make([]int32, size)
		copy(second, input)
		InverseDCT(n, second)

		for i := 0; i < size; i++ {
			if first[i] != second[i] {
				t.Fatalf("size %d index %d: %d != %d", size, i, first[i], second[i])
			}
		}
	}
}

func TestInverseDCT_InvalidSizePanics(t *testing.T) {
	for _, n := range []int{0, 1, 6} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("InverseDCT(%d, ...) did not panic", n)
				}
			}()
			InverseDCT(n, make([]int32, 64))
		}()
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("InverseDCTDCOnly(%d, ...) did not panic", n)
				}
			}()
			InverseDCTDCOnly(n, make([]int32, 64))
		}()
	}
}

func BenchmarkInverseDCT8(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	input := make([]int32, 8)
	for i := range input {
		input[i] = int32(rng.Intn(16384) - 8192)
	}
	data := make([]int32, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, input)
		InverseDCT(3, data)
	}
}

func BenchmarkInverseDCT32(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	input := make([]int32, 32)
	for i := range input {
		input[i] = int32(rng.Intn(16384) - 8192)
	}
	data := make([]int32, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, input)
		InverseDCT(5, data)
	}
}
