package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorClasses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"out of bounds", &OutOfBoundsError{From: 0, To: 9, Bits: 8}, ErrOutOfBounds},
		{"bit range", &BitRangeError{Got: 4, Want: 3}, ErrInvalidInput},
		{"count", &CountError{What: "indices", Got: 1, Want: 2}, ErrInvalidInput},
		{"coverage", &CoverageError{Provider: "foo", Bits: 2}, ErrConfiguration},
		{"insufficient coverage", &InsufficientCoverageError{Missing: 3}, ErrConfiguration},
		{"duplicate word", &DuplicateWordError{File: "f", Word: "w"}, ErrConfiguration},
		{"fingerprint", &FingerprintError{Translator: "t", Want: "aa", Got: "bb"}, ErrConfiguration},
		{"configuration", &ConfigurationError{Reason: "needs at least one word"}, ErrConfiguration},
		{"schema", &SchemaError{Key: "files", Reason: "must be non-empty"}, ErrConfiguration},
		{"unknown word", &UnknownWordError{Word: "w", Provider: "p"}, ErrTranslation},
		{"phrase", &PhraseError{Phrase: "x", Missing: " ", Kind: "separator"}, ErrTranslation},
		{"index width", &IndexWidthError{Word: "w", Index: 9, Bits: 3}, ErrTranslation},
		{"non-convergence", &NonConvergenceError{Passes: 1000}, ErrNonConvergence},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.want) {
			t.Errorf("%s: errors.Is(%v, %v) = false; want true", tt.name, tt.err, tt.want)
		}
	}
}

func TestErrorMessagesCarryOffendingValues(t *testing.T) {
	err := &UnknownWordError{Word: "zyzzy", Provider: "animals"}
	if msg := err.Error(); !strings.Contains(msg, "zyzzy") || !strings.Contains(msg, "animals") {
		t.Errorf("UnknownWordError message missing context: %q", msg)
	}

	perr := &PhraseError{Phrase: "a b", Missing: " likes ", Kind: "separator"}
	if msg := perr.Error(); !strings.Contains(msg, " likes ") || !strings.Contains(msg, "a b") {
		t.Errorf("PhraseError message missing context: %q", msg)
	}

	werr := &IndexWidthError{Word: "walrus", Index: 17, Bits: 4}
	if msg := werr.Error(); !strings.Contains(msg, "walrus") || !strings.Contains(msg, "17") {
		t.Errorf("IndexWidthError message missing context: %q", msg)
	}
}

func TestClassHelpers(t *testing.T) {
	if !IsConfiguration(&CoverageError{Provider: "p", Bits: 1}) {
		t.Error("IsConfiguration(CoverageError) = false; want true")
	}
	if IsConfiguration(&UnknownWordError{Word: "w", Provider: "p"}) {
		t.Error("IsConfiguration(UnknownWordError) = true; want false")
	}
	if !IsTranslation(&PhraseError{Phrase: "x", Missing: "y", Kind: "leading"}) {
		t.Error("IsTranslation(PhraseError) = false; want true")
	}
	if IsTranslation(errors.New("unrelated")) {
		t.Error("IsTranslation(unrelated) = true; want false")
	}
}
