// Package vp9core provides the entropy decoding and inverse transform
// primitives of the VP9 video codec.
//
// VP9 compressed headers and coefficient data are coded with a boolean
// arithmetic coder, and residual blocks are reconstructed with integer
// inverse DCT, ADST and Walsh-Hadamard transforms. This package
// implements both stages bit-exactly as defined by the VP9
// specification (sections 9.2 and 8.7).
//
// Basic usage for reading a boolean-coded partition:
//
//	d, err := vp9core.NewBoolDecoder(partition)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	flag := d.ReadBool(prob)
//	bits := d.ReadLiteral(4)
//	if err := d.Finish(); err != nil {
//	    log.Fatal(err)
//	}
//
// Basic usage for reconstructing a residual block in place:
//
//	vp9core.InverseTransform(vp9core.Tx8x8, vp9core.ADSTDCT, block)
package vp9core

import (
	"fmt"

	"github.com/openvideo/go-vp9core/internal/entropy"
	"github.com/openvideo/go-vp9core/internal/transform"
)

// TxSize constants for the square transform sizes.
const (
	// Tx4x4 is the 4x4 transform.
	Tx4x4 TxSize = iota
	// Tx8x8 is the 8x8 transform.
	Tx8x8
	// Tx16x16 is the 16x16 transform.
	Tx16x16
	// Tx32x32 is the 32x32 transform.
	Tx32x32
)

// TxSize represents a square transform size.
type TxSize int

// Log2 returns the base-2 logarithm of the transform width.
func (s TxSize) Log2() int {
	return int(s) + 2
}

// Width returns the transform width in samples.
func (s TxSize) Width() int {
	return 1 << s.Log2()
}

// NumCoeffs returns the number of coefficients in one block of this
// size.
func (s TxSize) NumCoeffs() int {
	w := s.Width()
	return w * w
}

// String returns the string representation of the transform size.
func (s TxSize) String() string {
	switch s {
	case Tx4x4:
		return "4x4"
	case Tx8x8:
		return "8x8"
	case Tx16x16:
		return "16x16"
	case Tx32x32:
		return "32x32"
	default:
		return "Unknown"
	}
}

// TxType constants for the 2D transform type. The first component
// names the vertical (column) transform, the second the horizontal
// (row) transform.
const (
	// DCTDCT applies the DCT along both axes.
	DCTDCT TxType = iota
	// ADSTDCT applies the ADST vertically and the DCT horizontally.
	ADSTDCT
	// DCTADST applies the DCT vertically and the ADST horizontally.
	DCTADST
	// ADSTADST applies the ADST along both axes.
	ADSTADST
)

// TxType represents the combination of 1D transforms applied to the
// two axes of a block.
type TxType int

// String returns the string representation of the transform type.
func (t TxType) String() string {
	switch t {
	case DCTDCT:
		return "DCT_DCT"
	case ADSTDCT:
		return "ADST_DCT"
	case DCTADST:
		return "DCT_ADST"
	case ADSTADST:
		return "ADST_ADST"
	default:
		return "Unknown"
	}
}

// rowKind returns the 1D transform applied to each row.
func (t TxType) rowKind() transform.Kind {
	if t == DCTADST || t == ADSTADST {
		return transform.ADST
	}
	return transform.DCT
}

// colKind returns the 1D transform applied to each column.
func (t TxType) colKind() transform.Kind {
	if t == ADSTDCT || t == ADSTADST {
		return transform.ADST
	}
	return transform.DCT
}

// BoolDecoder reads boolean-coded symbols from one VP9 partition.
type BoolDecoder = entropy.BoolDecoder

// Errors reported by the boolean decoder.
var (
	// ErrEmptyInput is returned when a partition has no bytes at all.
	ErrEmptyInput = entropy.ErrEmptyInput
	// ErrNonZeroMarker is returned when the marker bit that must open
	// every partition is set.
	ErrNonZeroMarker = entropy.ErrNonZeroMarker
	// ErrOverread is returned by Finish when more symbols were read
	// than the partition could supply.
	ErrOverread = entropy.ErrOverread
	// ErrNonZeroPadding is returned by Finish when the bits past the
	// last symbol are not all zero.
	ErrNonZeroPadding = entropy.ErrNonZeroPadding
)

// NewBoolDecoder initializes a boolean decoder over one partition's
// bytes and consumes its marker bit. The decoder borrows data; the
// caller must not modify it until Finish.
func NewBoolDecoder(data []byte) (*BoolDecoder, error) {
	d, err := entropy.NewBoolDecoder(data)
	if err != nil {
		return nil, fmt.Errorf("initializing boolean decoder: %w", err)
	}
	return d, nil
}

// InverseTransform reconstructs one residual block in place: block
// holds size.NumCoeffs() row-major dequantized coefficients on entry
// and the spatial residual on return.
//
// A mis-sized block, or an ADST type at 32x32, is a programming error
// and panics.
func InverseTransform(size TxSize, txType TxType, block []int32) {
	transform.Inverse2D(size.Log2(), txType.rowKind(), txType.colKind(), block)
}

// InverseTransformLossless reconstructs one 4x4 block of the lossless
// coding path in place, using the Walsh-Hadamard transform.
func InverseTransformLossless(block []int32) {
	transform.InverseWHT2D(block)
}
