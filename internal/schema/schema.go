// Package schema loads declarative translator definitions from JSON
// documents and builds ready-to-use phrase translators from them.
//
// A schema names word files, composes named providers from one or more
// files, and declares translators on top of the providers. Semantic
// verification happens before any file is opened.
package schema

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/phrasebit/phrasebit/core/bitcodec"
	"github.com/phrasebit/phrasebit/core/errors"
	"github.com/phrasebit/phrasebit/core/optimize"
	"github.com/phrasebit/phrasebit/core/phrase"
	"github.com/phrasebit/phrasebit/core/words"
	"github.com/phrasebit/phrasebit/internal/logging"
	"github.com/phrasebit/phrasebit/internal/wordfile"
)

// Schema is a parsed translator definition document.
type Schema struct {
	// Files maps file reference names to word file paths. Relative
	// paths are resolved against the schema file's directory.
	Files map[string]string `json:"files"`

	// Providers maps provider names to the file references whose words
	// they pool.
	Providers map[string][]string `json:"providers"`

	// Translators maps translator names to their definitions.
	Translators map[string]TranslatorDef `json:"translators"`
}

// TranslatorDef declares one translator.
type TranslatorDef struct {
	// Providers names the slot providers in order. It may be omitted
	// when Format is set; the format's slots then name the providers.
	Providers []string `json:"providers,omitempty"`

	// Format is a phrase template like "<animal> likes <food>.".
	// Format and Separators are mutually exclusive.
	Format string `json:"format,omitempty"`

	// Separators is the explicit separator list, one longer than the
	// provider list.
	Separators []string `json:"separators,omitempty"`

	// NumberOfBits is the total bit width of one phrase.
	NumberOfBits int `json:"number_of_bits"`

	// BitDistribution assigns per-slot bit widths. When omitted the
	// widths are searched for minimal mean phrase length.
	BitDistribution []int `json:"bit_distribution,omitempty"`

	// Fingerprint is the expected word corpus fingerprint as a hex
	// digest. When set, a mismatch aborts construction.
	Fingerprint string `json:"fingerprint,omitempty"`
}

// Parse decodes and semantically verifies a schema document.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	if err := s.Verify(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseFile reads, decodes, and semantically verifies the schema file
// at path.
func ParseFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return Parse(data)
}

// Load parses the schema file at path and builds every translator it
// declares. Word file paths are resolved relative to the schema file.
func Load(path string) (map[string]*phrase.Translator, error) {
	s, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return s.Build(filepath.Dir(path))
}

// Verify checks the schema semantically. No file I/O is performed;
// dangling references and inconsistent definitions are caught before
// any word file is opened.
func (s *Schema) Verify() error {
	if len(s.Files) == 0 {
		return &errors.SchemaError{Key: "files", Reason: "must declare at least one word file"}
	}
	for name, path := range s.Files {
		if path == "" {
			return &errors.SchemaError{Key: "files", Reason: fmt.Sprintf("file %q has an empty path", name)}
		}
	}
	if len(s.Providers) == 0 {
		return &errors.SchemaError{Key: "providers", Reason: "must declare at least one provider"}
	}
	for name, files := range s.Providers {
		if len(files) == 0 {
			return &errors.SchemaError{Key: "providers", Reason: fmt.Sprintf("provider %q references no files", name)}
		}
		for _, file := range files {
			if _, ok := s.Files[file]; !ok {
				return &errors.SchemaError{Key: "providers",
					Reason: fmt.Sprintf("provider %q references unknown file %q", name, file)}
			}
		}
	}
	if len(s.Translators) == 0 {
		return &errors.SchemaError{Key: "translators", Reason: "must declare at least one translator"}
	}
	for name, def := range s.Translators {
		if err := s.verifyTranslator(name, def); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) verifyTranslator(name string, def TranslatorDef) error {
	slots, separators, err := def.resolve()
	if err != nil {
		return err
	}
	for _, provider := range slots {
		if _, ok := s.Providers[provider]; !ok {
			return &errors.SchemaError{Key: "translators",
				Reason: fmt.Sprintf("translator %q references unknown provider %q", name, provider)}
		}
	}
	for _, sep := range separators[1 : len(separators)-1] {
		if sep == "" {
			return &errors.SchemaError{Key: "separators",
				Reason: fmt.Sprintf("translator %q has an empty interior separator", name)}
		}
	}
	if def.NumberOfBits < 1 {
		return &errors.SchemaError{Key: "number_of_bits",
			Reason: fmt.Sprintf("translator %q needs a positive bit width", name)}
	}
	if def.BitDistribution == nil {
		// the width search needs at least two slots to move bits between
		if len(slots) < 2 {
			return &errors.SchemaError{Key: "bit_distribution",
				Reason: fmt.Sprintf("translator %q needs an explicit bit distribution for a single slot", name)}
		}
	} else {
		if len(def.BitDistribution) != len(slots) {
			return &errors.SchemaError{Key: "bit_distribution",
				Reason: fmt.Sprintf("translator %q assigns widths to %d slots but has %d providers",
					name, len(def.BitDistribution), len(slots))}
		}
		// explicit distributions may assign a slot zero bits; only the
		// width search requires at least one bit per slot
		sum := 0
		for _, bits := range def.BitDistribution {
			if bits < 0 {
				return &errors.SchemaError{Key: "bit_distribution",
					Reason: fmt.Sprintf("translator %q assigns a slot a negative width", name)}
			}
			sum += bits
		}
		if sum != def.NumberOfBits {
			return &errors.SchemaError{Key: "bit_distribution",
				Reason: fmt.Sprintf("translator %q distributes %d bits of %d", name, sum, def.NumberOfBits)}
		}
	}
	if def.Fingerprint != "" {
		if _, err := hex.DecodeString(def.Fingerprint); err != nil {
			return &errors.SchemaError{Key: "fingerprint",
				Reason: fmt.Sprintf("translator %q: fingerprint is not a hex digest", name)}
		}
	}
	return nil
}

// resolve returns the slot provider names and the separator list of a
// definition, from either the format template or the explicit
// separator list.
func (d TranslatorDef) resolve() ([]string, []string, error) {
	switch {
	case d.Format != "" && d.Separators != nil:
		return nil, nil, &errors.SchemaError{Key: "format", Reason: "format and separators are mutually exclusive"}
	case d.Format != "":
		slots, separators, err := ParseFormat(d.Format)
		if err != nil {
			return nil, nil, err
		}
		if d.Providers != nil && !slices.Equal(d.Providers, slots) {
			return nil, nil, &errors.SchemaError{Key: "providers", Reason: "providers must match the format's slots"}
		}
		return slots, separators, nil
	case d.Separators != nil:
		if len(d.Providers) == 0 {
			return nil, nil, &errors.SchemaError{Key: "providers", Reason: "separators require an explicit provider list"}
		}
		if len(d.Separators) != len(d.Providers)+1 {
			return nil, nil, &errors.SchemaError{Key: "separators", Reason: "must provide exactly one more separator than providers"}
		}
		return d.Providers, d.Separators, nil
	}
	return nil, nil, &errors.SchemaError{Key: "format", Reason: "either format or separators is required"}
}

// Build loads the schema's word files relative to baseDir and
// constructs every declared translator.
func (s *Schema) Build(baseDir string) (map[string]*phrase.Translator, error) {
	fileWords := make(map[string][]string, len(s.Files))
	for name, file := range s.Files {
		list, err := wordfile.Read(filepath.Join(baseDir, file))
		if err != nil {
			return nil, err
		}
		logging.Debug("loaded word file", "name", name, "path", file, "words", len(list))
		fileWords[name] = list
	}

	providers := make(map[string]*words.Provider, len(s.Providers))
	for name, files := range s.Providers {
		var input []string
		for _, file := range files {
			input = append(input, fileWords[file]...)
		}
		provider, err := words.NewProvider(input, name)
		if err != nil {
			return nil, err
		}
		providers[name] = provider
	}

	translators := make(map[string]*phrase.Translator, len(s.Translators))
	for name, def := range s.Translators {
		translator, err := buildTranslator(name, def, providers)
		if err != nil {
			return nil, err
		}
		translators[name] = translator
	}
	return translators, nil
}

func buildTranslator(name string, def TranslatorDef, byName map[string]*words.Provider) (*phrase.Translator, error) {
	slotNames, separatorList, err := def.resolve()
	if err != nil {
		return nil, err
	}
	slots := make([]*words.Provider, len(slotNames))
	for i, provider := range slotNames {
		slots[i] = byName[provider]
	}

	distribution := def.BitDistribution
	if distribution == nil {
		distribution, err = optimize.OptimalDistribution(slots, def.NumberOfBits)
		if err != nil {
			return nil, err
		}
		logging.Debug("optimized bit distribution", "translator", name, "distribution", distribution)
	}

	sequence := words.NewSequence(slots)
	if def.Fingerprint != "" {
		if got := sequence.Fingerprint(); got != def.Fingerprint {
			return nil, &errors.FingerprintError{Translator: name, Want: def.Fingerprint, Got: got}
		}
	}

	index, err := bitcodec.NewIndexTranslator(distribution)
	if err != nil {
		return nil, err
	}
	separators, err := phrase.NewSeparators(separatorList)
	if err != nil {
		return nil, err
	}
	return phrase.NewTranslator(sequence, index, separators, separators)
}
