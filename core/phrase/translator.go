package phrase

import (
	"github.com/phrasebit/phrasebit/core/bitcodec"
	"github.com/phrasebit/phrasebit/core/errors"
	"github.com/phrasebit/phrasebit/core/words"
)

// Translator translates between bit sequences and phrases.
//
// A bit range is chopped into per-slot indices by the IndexTranslator, the
// Sequence maps each index to a word from its slot's provider, and the
// Constructor joins the words into a phrase. Translating a phrase back into
// bits is the exact reverse.
//
// A Translator is immutable after construction and safe for concurrent use.
// Byte buffers passed to its methods are caller-owned.
type Translator struct {
	sequence      *words.Sequence
	index         *bitcodec.IndexTranslator
	constructor   Constructor
	deconstructor Deconstructor
	numBits       int
}

// NewTranslator composes a Translator and verifies that every provider can
// cover the bit width its slot was assigned. Construction fails before any
// translation is attempted if coverage is insufficient.
func NewTranslator(sequence *words.Sequence, index *bitcodec.IndexTranslator,
	constructor Constructor, deconstructor Deconstructor) (*Translator, error) {
	if err := sequence.VerifyBitDistribution(index.BitDistribution()); err != nil {
		return nil, err
	}
	return &Translator{
		sequence:      sequence,
		index:         index,
		constructor:   constructor,
		deconstructor: deconstructor,
		numBits:       index.BitCoverage(),
	}, nil
}

// BitCoverage returns the total number of bits one phrase encodes.
func (t *Translator) BitCoverage() int {
	return t.numBits
}

// Sequence returns the word provider sequence the translator was built with.
func (t *Translator) Sequence() *words.Sequence {
	return t.sequence
}

// IndexTranslator returns the index translator the translator was built with.
func (t *Translator) IndexTranslator() *bitcodec.IndexTranslator {
	return t.index
}

// FromBytes translates the bit range [fromBit, toBit) of buf into a phrase.
// The range width must equal BitCoverage.
func (t *Translator) FromBytes(buf []byte, fromBit, toBit int) (string, error) {
	indices, err := t.index.FromBytes(buf, fromBit, toBit)
	if err != nil {
		return "", err
	}
	ws, err := t.sequence.Words(indices)
	if err != nil {
		return "", err
	}
	return t.constructor.Construct(ws)
}

// ToBytes translates a phrase into the bit range [fromBit, toBit) of buf.
//
// The phrase is deconstructed into words, the words mapped to indices, and
// every index checked against its slot's width ceiling before anything is
// written: a provider may hold more words than its assigned width can index,
// and such a word is a translation error even though lookup succeeded. The
// check exists only on this path; FromBytes never produces such indices.
func (t *Translator) ToBytes(buf []byte, phrase string, fromBit, toBit int) error {
	ws, err := t.deconstructor.Deconstruct(phrase)
	if err != nil {
		return err
	}
	indices, err := t.sequence.Indices(ws)
	if err != nil {
		return err
	}
	if err := verifyIndexWidths(indices, ws, t.index.BitDistribution()); err != nil {
		return err
	}
	return t.index.ToBytes(buf, indices, fromBit, toBit)
}

// FromUint64 translates the low BitCoverage bits of value, packed LSB-first
// from bit 0, into a phrase. BitCoverage must be at most 64.
func (t *Translator) FromUint64(value uint64) (string, error) {
	if t.numBits > bitcodec.MaxBits {
		return "", &errors.OutOfBoundsError{From: 0, To: t.numBits, Bits: bitcodec.MaxBits}
	}
	buf := make([]byte, bitcodec.BytesForBits(t.numBits))
	if err := bitcodec.WriteBits(buf, 0, t.numBits, value); err != nil {
		return "", err
	}
	return t.FromBytes(buf, 0, t.numBits)
}

// ToUint64 translates a phrase into the value its BitCoverage bits encode,
// unpacked LSB-first from bit 0. BitCoverage must be at most 64.
func (t *Translator) ToUint64(phrase string) (uint64, error) {
	if t.numBits > bitcodec.MaxBits {
		return 0, &errors.OutOfBoundsError{From: 0, To: t.numBits, Bits: bitcodec.MaxBits}
	}
	buf := make([]byte, bitcodec.BytesForBits(t.numBits))
	if err := t.ToBytes(buf, phrase, 0, t.numBits); err != nil {
		return 0, err
	}
	return bitcodec.ReadBits(buf, 0, t.numBits)
}

// verifyIndexWidths checks that every index fits in the bits assigned to
// its slot.
func verifyIndexWidths(indices []int, ws []string, widths []int) error {
	for i, index := range indices {
		if widths[i] >= bitcodec.MaxBits {
			continue // any int index fits in 64 bits
		}
		if uint64(index) >= uint64(1)<<widths[i] {
			return &errors.IndexWidthError{Word: ws[i], Index: index, Bits: widths[i]}
		}
	}
	return nil
}
