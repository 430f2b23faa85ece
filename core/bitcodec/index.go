package bitcodec

import (
	"math"

	"github.com/phrasebit/phrasebit/core/errors"
)

// IndexTranslator translates between bit sequences and lists of indices.
//
// A bit sequence is divided into subsequences according to a bit
// distribution: an ordered list of per-slot bit widths. Each subsequence is
// interpreted as an LSB-first integer. For example the distribution [2, 1, 3]
// splits a 6-bit range into a 2-bit, a 1-bit and a 3-bit index.
type IndexTranslator struct {
	distribution []int
	coverage     int
}

// NewIndexTranslator creates an IndexTranslator for a bit distribution.
// Widths must be non-negative and no wider than 64 bits each.
func NewIndexTranslator(distribution []int) (*IndexTranslator, error) {
	dist := make([]int, len(distribution))
	coverage := 0
	for i, width := range distribution {
		if width < 0 || width > MaxBits {
			return nil, &errors.OutOfBoundsError{From: 0, To: width, Bits: MaxBits}
		}
		dist[i] = width
		coverage += width
	}
	return &IndexTranslator{distribution: dist, coverage: coverage}, nil
}

// BitCoverage returns the number of bits the distribution covers, i.e. the
// sum of all slot widths.
func (t *IndexTranslator) BitCoverage() int {
	return t.coverage
}

// BitDistribution returns a copy of the bit distribution.
func (t *IndexTranslator) BitDistribution() []int {
	dist := make([]int, len(t.distribution))
	copy(dist, t.distribution)
	return dist
}

// Slots returns the number of slots in the distribution.
func (t *IndexTranslator) Slots() int {
	return len(t.distribution)
}

// FromBytes reads the bit range [fromBit, toBit) of buf left to right in
// distribution order, decoding one index per slot. The range width must
// equal BitCoverage exactly.
func (t *IndexTranslator) FromBytes(buf []byte, fromBit, toBit int) ([]int, error) {
	if err := t.checkBitRange(buf, fromBit, toBit); err != nil {
		return nil, err
	}
	indices := make([]int, 0, len(t.distribution))
	pos := fromBit
	for _, width := range t.distribution {
		value, err := ReadBits(buf, pos, pos+width)
		if err != nil {
			return nil, err
		}
		if value > math.MaxInt {
			return nil, &errors.OutOfBoundsError{From: pos, To: pos + width, Bits: len(buf) * 8}
		}
		indices = append(indices, int(value))
		pos += width
	}
	return indices, nil
}

// ToBytes encodes one index per slot into the bit range [fromBit, toBit) of
// buf, left to right in distribution order. The number of indices must match
// the distribution length and the range width must equal BitCoverage.
func (t *IndexTranslator) ToBytes(buf []byte, indices []int, fromBit, toBit int) error {
	if err := t.checkBitRange(buf, fromBit, toBit); err != nil {
		return err
	}
	if len(indices) != len(t.distribution) {
		return &errors.CountError{What: "indices", Got: len(indices), Want: len(t.distribution)}
	}
	pos := fromBit
	for i, width := range t.distribution {
		if err := WriteBits(buf, pos, pos+width, uint64(indices[i])); err != nil {
			return err
		}
		pos += width
	}
	return nil
}

func (t *IndexTranslator) checkBitRange(buf []byte, fromBit, toBit int) error {
	if fromBit < 0 || fromBit > toBit || toBit > len(buf)*8 {
		return &errors.OutOfBoundsError{From: fromBit, To: toBit, Bits: len(buf) * 8}
	}
	if toBit-fromBit != t.coverage {
		return &errors.BitRangeError{Got: toBit - fromBit, Want: t.coverage}
	}
	return nil
}
