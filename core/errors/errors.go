// Package errors provides standardized error types and helpers for the phrasebit codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error classes of the translator pipeline.
var (
	// ErrConfiguration indicates an invalid translator configuration.
	// Detected eagerly at construction time and fatal to it.
	ErrConfiguration = errors.New("configuration error")
	// ErrTranslation indicates a per-call translation failure. The
	// translator is unaffected; the caller may retry with corrected input.
	ErrTranslation = errors.New("translation error")
	// ErrNonConvergence indicates the optimizer exhausted its move budget.
	ErrNonConvergence = errors.New("optimizer did not converge")
	// ErrOutOfBounds indicates a bit range outside the buffer or wider than 64 bits.
	ErrOutOfBounds = errors.New("bit range out of bounds")
	// ErrInvalidInput indicates invalid input or validation failure.
	ErrInvalidInput = errors.New("invalid input")
)

// OutOfBoundsError reports a bit range that cannot be read or written.
type OutOfBoundsError struct {
	From int // first bit index, inclusive
	To   int // last bit index, exclusive
	Bits int // number of addressable bits in the buffer
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("bit range [%d, %d) out of bounds for buffer of %d bits", e.From, e.To, e.Bits)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// BitRangeError reports a bit range whose width does not match the
// translator's bit coverage.
type BitRangeError struct {
	Got  int // width of the supplied range
	Want int // bit coverage of the translator
}

func (e *BitRangeError) Error() string {
	return fmt.Sprintf("bit range covers %d bits, translator requires exactly %d", e.Got, e.Want)
}

func (e *BitRangeError) Unwrap() error {
	return ErrInvalidInput
}

// CountError reports a slice whose length does not match the slot count.
type CountError struct {
	What string // what was counted (e.g. "indices", "words", "widths")
	Got  int
	Want int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("got %d %s, want %d", e.Got, e.What, e.Want)
}

func (e *CountError) Unwrap() error {
	return ErrInvalidInput
}

// CoverageError reports a provider that cannot cover the bit width
// assigned to its slot.
type CoverageError struct {
	Provider string // provider reference name
	Bits     int    // required bit coverage
}

func (e *CoverageError) Error() string {
	return fmt.Sprintf("word provider %q does not provide the required bit coverage %d", e.Provider, e.Bits)
}

func (e *CoverageError) Unwrap() error {
	return ErrConfiguration
}

// InsufficientCoverageError reports that the providers combined cannot
// absorb the requested total number of bits.
type InsufficientCoverageError struct {
	Missing int // bits left unassignable
}

func (e *InsufficientCoverageError) Error() string {
	return fmt.Sprintf("incomplete bit coverage: missing coverage for last %d bit(s)", e.Missing)
}

func (e *InsufficientCoverageError) Unwrap() error {
	return ErrConfiguration
}

// DuplicateWordError reports a word appearing twice in one word file.
type DuplicateWordError struct {
	File string // file reference name
	Word string
}

func (e *DuplicateWordError) Error() string {
	return fmt.Sprintf("file %q contains duplicate words, see %q", e.File, e.Word)
}

func (e *DuplicateWordError) Unwrap() error {
	return ErrConfiguration
}

// FingerprintError reports a mismatch between the expected and the
// computed word corpus fingerprint of a translator.
type FingerprintError struct {
	Translator string
	Want       string
	Got        string
}

func (e *FingerprintError) Error() string {
	return fmt.Sprintf("expected fingerprint %s does not match computed fingerprint %s for translator %q",
		e.Want, e.Got, e.Translator)
}

func (e *FingerprintError) Unwrap() error {
	return ErrConfiguration
}

// ConfigurationError reports an invalid construction argument outside
// any schema document, such as an empty word list or an illegal
// optimizer starting input.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// SchemaError reports a semantically invalid schema document.
type SchemaError struct {
	Key    string // schema key involved, if any
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("schema key %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("invalid schema: %s", e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return ErrConfiguration
}

// UnknownWordError reports a word that its slot's provider does not contain.
type UnknownWordError struct {
	Word     string
	Provider string // provider reference name
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("could not find word %q in word provider %q", e.Word, e.Provider)
}

func (e *UnknownWordError) Unwrap() error {
	return ErrTranslation
}

// PhraseError reports a phrase that does not match the expected format.
type PhraseError struct {
	Phrase  string
	Missing string // the substring that could not be found
	Kind    string // "leading", "trailing" or "separator"
}

func (e *PhraseError) Error() string {
	return fmt.Sprintf("could not find expected %s substring %q in phrase %q", e.Kind, e.Missing, e.Phrase)
}

func (e *PhraseError) Unwrap() error {
	return ErrTranslation
}

// IndexWidthError reports a word whose index cannot be represented in the
// bits assigned to its slot.
type IndexWidthError struct {
	Word  string
	Index int
	Bits  int // bits assigned to the slot
}

func (e *IndexWidthError) Error() string {
	return fmt.Sprintf("word %q at index %d is greater than what the number of bits (%d) allows for",
		e.Word, e.Index, e.Bits)
}

func (e *IndexWidthError) Unwrap() error {
	return ErrTranslation
}

// NonConvergenceError reports an optimizer run that exceeded its pass budget.
type NonConvergenceError struct {
	Passes int // accepted passes before giving up
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("still finding descent directions after %d accepted passes", e.Passes)
}

func (e *NonConvergenceError) Unwrap() error {
	return ErrNonConvergence
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsTranslation reports whether err is a recoverable translation error.
func IsTranslation(err error) bool {
	return errors.Is(err, ErrTranslation)
}
