// Package phrase assembles word lists into phrases and back, and
// orchestrates the full bytes <-> phrase translation pipeline.
package phrase

import (
	"strings"

	"github.com/phrasebit/phrasebit/core/errors"
)

// Constructor turns an ordered word list into a phrase.
type Constructor interface {
	Construct(words []string) (string, error)
}

// Deconstructor splits a phrase back into its ordered word list.
type Deconstructor interface {
	Deconstruct(phrase string) ([]string, error)
}

// Separators constructs and deconstructs phrases by interleaving words with
// fixed separator strings.
//
// Of the K configured separators, the first is the phrase prefix and the
// last the suffix (either may be empty); the K-2 interior separators sit
// between consecutive words and must be non-empty. Separators ["", " likes ",
// "."] applied to ["Dingos", "moussaka"] give "Dingos likes moussaka.".
//
// Both words and separators are treated as literal text throughout; regex
// metacharacters have no special meaning.
type Separators struct {
	leading  string
	trailing string
	interior []string
}

// NewSeparators creates a Separators from an ordered separator list of
// length one greater than the number of words per phrase. At least two
// entries are required.
func NewSeparators(separators []string) (*Separators, error) {
	if len(separators) < 2 {
		return nil, &errors.SchemaError{Key: "format", Reason: "must provide at least two separators"}
	}
	interior := make([]string, len(separators)-2)
	copy(interior, separators[1:len(separators)-1])
	for _, sep := range interior {
		if sep == "" {
			return nil, &errors.SchemaError{Key: "format", Reason: "interior separators must not be empty"}
		}
	}
	return &Separators{
		leading:  separators[0],
		trailing: separators[len(separators)-1],
		interior: interior,
	}, nil
}

// WordCount returns the number of words per phrase.
func (s *Separators) WordCount() int {
	return len(s.interior) + 1
}

// Construct concatenates prefix, words interleaved with the interior
// separators, and suffix. The number of words must equal WordCount.
func (s *Separators) Construct(words []string) (string, error) {
	if len(words) != s.WordCount() {
		return "", &errors.CountError{What: "words", Got: len(words), Want: s.WordCount()}
	}
	var b strings.Builder
	b.WriteString(s.leading)
	b.WriteString(words[0])
	for i, sep := range s.interior {
		b.WriteString(sep)
		b.WriteString(words[i+1])
	}
	b.WriteString(s.trailing)
	return b.String(), nil
}

// Deconstruct strips the prefix and suffix, then scans left to right: each
// interior separator is located by literal substring search from the current
// cursor, the text before it is emitted as a word, and the cursor advances
// past the separator. The text after the last separator is the last word.
//
// If a word happens to contain an interior separator occurrence the greedy
// leftmost scan will split at the earlier position, so
// Deconstruct(Construct(words)) may differ from words in that case. This is
// a documented limitation, not auto-corrected.
func (s *Separators) Deconstruct(phrase string) ([]string, error) {
	rest, ok := strings.CutPrefix(phrase, s.leading)
	if !ok {
		return nil, &errors.PhraseError{Phrase: phrase, Missing: s.leading, Kind: "leading"}
	}
	rest, ok = strings.CutSuffix(rest, s.trailing)
	if !ok {
		return nil, &errors.PhraseError{Phrase: phrase, Missing: s.trailing, Kind: "trailing"}
	}

	words := make([]string, 0, s.WordCount())
	for _, sep := range s.interior {
		i := strings.Index(rest, sep)
		if i < 0 {
			return nil, &errors.PhraseError{Phrase: phrase, Missing: sep, Kind: "separator"}
		}
		words = append(words, rest[:i])
		rest = rest[i+len(sep):]
	}
	words = append(words, rest)
	return words, nil
}
