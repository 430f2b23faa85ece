// Package words provides deduplicated, canonically ordered word lists and
// their fixed-order composition into phrase slots.
package words

import (
	"fmt"
	"math/bits"
	"sort"
	"unicode/utf8"

	"github.com/phrasebit/phrasebit/core/errors"
)

// Provider is an immutable ordered list of unique words.
//
// Words are ordered canonically: ascending by character length, and
// ascending lexicographically within equal length. Index 0 is therefore
// always the lexicographically smallest of the shortest words, regardless
// of the order the words were supplied in.
type Provider struct {
	words []string
	index map[string]int
	name  string
}

// NewProvider creates a Provider from a word collection. Duplicates in the
// input are allowed and collapse to a single entry. At least one distinct
// word is required. The name is the provider's reference name, used in
// diagnostics.
func NewProvider(input []string, name string) (*Provider, error) {
	set := make(map[string]struct{}, len(input))
	for _, w := range input {
		set[w] = struct{}{}
	}
	if len(set) == 0 {
		return nil, &errors.ConfigurationError{Reason: fmt.Sprintf("word provider %q needs at least one word", name)}
	}
	list := make([]string, 0, len(set))
	for w := range set {
		list = append(list, w)
	}
	sortCanonically(list)

	index := make(map[string]int, len(list))
	for i, w := range list {
		index[w] = i
	}
	return &Provider{words: list, index: index, name: name}, nil
}

// sortCanonically sorts lexicographically first, then stably by character
// length, so equal-length runs stay in lexicographic order. Length is in
// runes, matching MeanWordLength.
func sortCanonically(list []string) {
	sort.Strings(list)
	sort.SliceStable(list, func(i, j int) bool {
		return utf8.RuneCountInString(list[i]) < utf8.RuneCountInString(list[j])
	})
}

// Get returns the word at index.
func (p *Provider) Get(index int) (string, error) {
	if index < 0 || index >= len(p.words) {
		return "", &errors.OutOfBoundsError{From: index, To: index, Bits: len(p.words)}
	}
	return p.words[index], nil
}

// IndexOf returns the canonical position of word, or false if the provider
// does not contain it. Absence is not an error here; callers decide whether
// a missing word is fatal.
func (p *Provider) IndexOf(word string) (int, bool) {
	i, ok := p.index[word]
	return i, ok
}

// Len returns the number of distinct words.
func (p *Provider) Len() int {
	return len(p.words)
}

// Name returns the provider's reference name.
func (p *Provider) Name() string {
	return p.name
}

// BitCoverage returns floor(log2(Len())): the widest bit range this
// provider can losslessly index.
func (p *Provider) BitCoverage() int {
	return bits.Len(uint(len(p.words))) - 1
}

// MeanWordLength returns the average length, in runes, of the first
// numWords words in canonical order (the shortest numWords words).
// numWords must be a power of two between 1 and Len().
func (p *Provider) MeanWordLength(numWords int) (float64, error) {
	if numWords < 1 || numWords > len(p.words) || numWords&(numWords-1) != 0 {
		return 0, &errors.CountError{What: "words (power of two within provider size)", Got: numWords, Want: len(p.words)}
	}
	total := 0
	for _, w := range p.words[:numWords] {
		total += utf8.RuneCountInString(w)
	}
	return float64(total) / float64(numWords), nil
}

// all iterates the words in canonical order. Used by the sequence
// fingerprint; not part of the public surface.
func (p *Provider) all(fn func(word string)) {
	for _, w := range p.words {
		fn(w)
	}
}
