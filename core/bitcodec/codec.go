// Package bitcodec reads and writes bit ranges of byte buffers as unsigned
// integers, and maps whole bit ranges to per-slot indices through a bit
// distribution.
//
// Bit i of a buffer lives in byte i/8 at intra-byte offset i%8, so values
// are packed LSB-first and multi-byte buffers are little-endian, byte-major.
package bitcodec

import (
	"github.com/phrasebit/phrasebit/core/errors"
)

// MaxBits is the widest range a single value can occupy.
const MaxBits = 64

// WriteBits writes the low (toBit-fromBit) bits of value into buf at bit
// positions [fromBit, toBit), least significant bit first. Bits of value
// above the range width are ignored, and bits of buf outside the range are
// left untouched.
func WriteBits(buf []byte, fromBit, toBit int, value uint64) error {
	if err := checkRange(buf, fromBit, toBit); err != nil {
		return err
	}
	for i := 0; i < toBit-fromBit; i++ {
		pos := fromBit + i
		mask := byte(1) << (pos % 8)
		if (value>>i)&1 == 1 {
			buf[pos/8] |= mask
		} else {
			buf[pos/8] &^= mask
		}
	}
	return nil
}

// ReadBits reads bit positions [fromBit, toBit) of buf as an unsigned
// integer, least significant bit first.
func ReadBits(buf []byte, fromBit, toBit int) (uint64, error) {
	if err := checkRange(buf, fromBit, toBit); err != nil {
		return 0, err
	}
	var value uint64
	for i := 0; i < toBit-fromBit; i++ {
		pos := fromBit + i
		if buf[pos/8]&(1<<(pos%8)) != 0 {
			value |= 1 << i
		}
	}
	return value, nil
}

// BytesForBits returns the number of bytes needed to hold numBits bits.
func BytesForBits(numBits int) int {
	return (numBits + 7) / 8
}

func checkRange(buf []byte, fromBit, toBit int) error {
	if fromBit < 0 || fromBit > toBit || toBit > len(buf)*8 || toBit-fromBit > MaxBits {
		return &errors.OutOfBoundsError{From: fromBit, To: toBit, Bits: len(buf) * 8}
	}
	return nil
}
