// Package entropy implements the boolean entropy decoder for VP9.
//
// The boolean decoder is a binary arithmetic decoder (9.2 in the VP9
// bitstream specification) that consumes one compressed partition and
// produces probability-weighted boolean values. The syntax parser drives
// it: each call's meaning depends on the exact sequence of prior calls,
// so one decoder instance is strictly sequential.
package entropy

import (
	"encoding/binary"
	"errors"
	"math/bits"
)

// Errors reported by the boolean decoder. Overread and padding problems
// are detected lazily and surfaced by Finish, matching the deferred
// validation design of the bitstream specification.
var (
	// ErrEmptyInput is returned when a decoder is constructed over a
	// zero-length buffer.
	ErrEmptyInput = errors.New("entropy: empty input buffer")
	// ErrNonZeroMarker is returned when the first decoded marker bit is
	// not zero.
	ErrNonZeroMarker = errors.New("entropy: marker bit was non-zero")
	// ErrOverread is returned by Finish when decoding consumed more bits
	// than the buffer held.
	ErrOverread = errors.New("entropy: read past the end of the buffer")
	// ErrNonZeroPadding is returned by Finish when trailing bytes or the
	// residual buffered value are non-zero.
	ErrNonZeroPadding = errors.New("entropy: non-zero padding byte")
)

// The value field buffers undecoded bits in its most significant bits.
// Refills happen in whole-byte chunks; one byte of headroom keeps the
// chunk aligned below up to 8 already-buffered bits.
const (
	reserveBytes = 7
	reserveBits  = reserveBytes * 8
)

// BoolDecoder decodes probability-weighted booleans from one bitstream
// partition. One instance per partition; calls must occur in bitstream
// order and instances must not be shared across goroutines.
type BoolDecoder struct {
	// Unread remainder of the input buffer.
	data []byte
	// Bit reservoir. The next undecoded bits occupy the high bits, in
	// big-endian bit order.
	value uint64
	// Count of valid buffered bits in value.
	valueBitsLeft int
	// Arithmetic interval width. Stays in [128, 255] after every
	// renormalization.
	rng uint32
	// Set once a refill finds the buffer exhausted; never cleared.
	overread bool
}

// NewBoolDecoder constructs a decoder over one partition's bytes and
// consumes the initial marker bit (9.2.1). The marker must decode to
// zero for the partition to be valid.
func NewBoolDecoder(data []byte) (*BoolDecoder, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	d := &BoolDecoder{
		data: data,
		rng:  255,
	}
	d.fillReservoir()
	if d.ReadBool(128) {
		return nil, ErrNonZeroMarker
	}
	return d, nil
}

// fillReservoir tops up the value register when 8 or fewer buffered bits
// remain. Bytes are read in bulk rather than bit-by-bit; this is
// observably equivalent to the specification's one-bit-at-a-time refill.
// Once the buffer is exhausted the overread flag sticks and further
// shifts feed zero bits.
func (d *BoolDecoder) fillReservoir() {
	if d.valueBitsLeft > 8 {
		return
	}
	if len(d.data) == 0 {
		d.overread = true
		return
	}

	n := len(d.data)
	if n > reserveBytes {
		n = reserveBytes
	}
	var chunk [8]byte
	copy(chunk[:], d.data[:n])
	d.data = d.data[n:]

	d.value |= binary.BigEndian.Uint64(chunk[:]) >> uint(d.valueBitsLeft)
	d.valueBitsLeft += n * 8
}

// ReadBool decodes one boolean with the given probability of being
// false, out of 256 (9.2.2).
func (d *BoolDecoder) ReadBool(probability uint8) bool {
	split := 1 + (((d.rng - 1) * uint32(probability)) >> 8)
	// The bits being decoded reside in the most significant byte of the
	// value register, so the split is shifted into the same alignment.
	splitShifted := uint64(split) << reserveBits

	var result bool
	if d.value < splitShifted {
		d.rng = split
	} else {
		d.rng -= split
		d.value -= splitShifted
		result = true
	}

	shift := bits.LeadingZeros8(uint8(d.rng))
	d.rng <<= shift
	d.value <<= shift
	d.valueBitsLeft -= shift

	d.fillReservoir()
	return result
}

// ReadLiteral decodes an unsigned integer as the given number of
// equiprobable bits, most significant first (9.2.4).
func (d *BoolDecoder) ReadLiteral(count int) uint8 {
	var result uint8
	for i := 0; i < count; i++ {
		result *= 2
		if d.ReadBool(128) {
			result++
		}
	}
	return result
}

// Finish validates the exit state of the decoder (9.2.3). It reports
// ErrOverread if any refill ran past the end of the buffer, and
// ErrNonZeroPadding unless the residual buffered value and every unread
// trailing byte are zero. No call on the decoder is valid afterwards.
func (d *BoolDecoder) Finish() error {
	if d.overread {
		return ErrOverread
	}

	paddingGood := d.value == 0
	for _, b := range d.data {
		if b != 0 {
			paddingGood = false
		}
	}
	d.data = nil

	if !paddingGood {
		return ErrNonZeroPadding
	}
	// Bitstream conformance also requires that the padding never forms a
	// superframe marker byte. The correct remediation is unsettled
	// upstream, so that rule is not enforced here.
	return nil
}
