package words

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/phrasebit/phrasebit/core/errors"
)

// Sequence is a fixed-order list of Providers, one per phrase slot.
// It maps slot indices to words and back, sums bit coverage, and
// fingerprints the combined word corpus.
type Sequence struct {
	providers []*Provider
}

// NewSequence creates a Sequence from providers in slot order.
func NewSequence(providers []*Provider) *Sequence {
	list := make([]*Provider, len(providers))
	copy(list, providers)
	return &Sequence{providers: list}
}

// Len returns the number of slots.
func (s *Sequence) Len() int {
	return len(s.providers)
}

// Provider returns the provider for slot i.
func (s *Sequence) Provider(i int) *Provider {
	return s.providers[i]
}

// Words maps one index per slot to the corresponding words. The number of
// indices must equal the slot count.
func (s *Sequence) Words(indices []int) ([]string, error) {
	if len(indices) != len(s.providers) {
		return nil, &errors.CountError{What: "indices", Got: len(indices), Want: len(s.providers)}
	}
	out := make([]string, len(indices))
	for i, index := range indices {
		word, err := s.providers[i].Get(index)
		if err != nil {
			return nil, err
		}
		out[i] = word
	}
	return out, nil
}

// Indices maps one word per slot to its canonical index. The leftmost slot
// whose provider does not contain its word fails the whole call; later
// slots are not checked.
func (s *Sequence) Indices(words []string) ([]int, error) {
	if len(words) != len(s.providers) {
		return nil, &errors.CountError{What: "words", Got: len(words), Want: len(s.providers)}
	}
	out := make([]int, len(words))
	for i, word := range words {
		index, ok := s.providers[i].IndexOf(word)
		if !ok {
			return nil, &errors.UnknownWordError{Word: word, Provider: s.providers[i].Name()}
		}
		out[i] = index
	}
	return out, nil
}

// BitCoverage returns the sum of each provider's bit coverage.
func (s *Sequence) BitCoverage() int {
	sum := 0
	for _, p := range s.providers {
		sum += p.BitCoverage()
	}
	return sum
}

// VerifyBitDistribution checks that every slot's assigned width is within
// its provider's bit coverage. The number of widths must equal the slot
// count.
func (s *Sequence) VerifyBitDistribution(widths []int) error {
	if len(widths) != len(s.providers) {
		return &errors.CountError{What: "widths", Got: len(widths), Want: len(s.providers)}
	}
	for i, p := range s.providers {
		if widths[i] > p.BitCoverage() {
			return &errors.CoverageError{Provider: p.Name(), Bits: widths[i]}
		}
	}
	return nil
}

// Fingerprint returns the hex BLAKE3 digest of every provider's words in
// canonical order, providers visited in slot order. The original ordering
// of the word files does not affect the digest; the slot order of the
// providers does.
func (s *Sequence) Fingerprint() string {
	hasher := blake3.New()
	for _, p := range s.providers {
		p.all(func(word string) {
			hasher.Write([]byte(word))
		})
	}
	return hex.EncodeToString(hasher.Sum(nil))
}
