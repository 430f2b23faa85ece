// Command phrasebit translates bit sequences into readable phrases and
// back, driven by a JSON schema of word files, providers, and
// translators.
package main

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/phrasebit/phrasebit/core/bitcodec"
	"github.com/phrasebit/phrasebit/core/phrase"
	"github.com/phrasebit/phrasebit/internal/logging"
	"github.com/phrasebit/phrasebit/internal/schema"
)

const version = "1.0.0"

// CLI defines the command-line interface for phrasebit.
var CLI struct {
	// Global flags
	SchemaFile string `name:"schema-file" short:"s" help:"Schema file path" default:"phrasebit.json" type:"path"`
	LogLevel   string `help:"Log level (debug, info, warn, error)" default:"warn" enum:"debug,info,warn,error"`
	LogFormat  string `help:"Log format (text, json)" default:"text" enum:"text,json"`

	Decode  DecodeCmd   `cmd:"" help:"Translate a value into a phrase"`
	Encode  EncodeCmd   `cmd:"" help:"Translate a phrase back into its value"`
	Random  RandomCmd   `cmd:"" help:"Generate a random phrase"`
	Schema  SchemaGroup `cmd:"" help:"Schema operations (validate, fingerprint, optimize)"`
	Version VersionCmd  `cmd:"" help:"Print version information"`
}

// SchemaGroup contains schema inspection operations.
type SchemaGroup struct {
	Validate    SchemaValidateCmd    `cmd:"" help:"Verify a schema and build its translators"`
	Fingerprint SchemaFingerprintCmd `cmd:"" help:"Print the word corpus fingerprint of each translator"`
	Optimize    SchemaOptimizeCmd    `cmd:"" help:"Print the bit distribution of each translator"`
}

// loadTranslator builds the schema's translators and picks one. An
// empty name is allowed when the schema declares exactly one.
func loadTranslator(name string) (*phrase.Translator, error) {
	translators, err := schema.Load(CLI.SchemaFile)
	if err != nil {
		return nil, err
	}
	if name == "" {
		if len(translators) == 1 {
			for _, translator := range translators {
				return translator, nil
			}
		}
		return nil, fmt.Errorf("schema declares %d translators, pick one with --translator", len(translators))
	}
	translator, ok := translators[name]
	if !ok {
		return nil, fmt.Errorf("translator %q is not declared in %s", name, CLI.SchemaFile)
	}
	return translator, nil
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecodeCmd translates a value into a phrase.
type DecodeCmd struct {
	Translator string `short:"t" help:"Translator name (optional when the schema declares only one)"`
	Hex        bool   `help:"Treat the value as hex-encoded bytes"`
	Value      string `arg:"" help:"Decimal value, or hex bytes with --hex"`
}

func (c *DecodeCmd) Run() error {
	translator, err := loadTranslator(c.Translator)
	if err != nil {
		return err
	}
	if c.Hex {
		buf, err := hex.DecodeString(c.Value)
		if err != nil {
			return fmt.Errorf("decode hex value: %w", err)
		}
		text, err := translator.FromBytes(buf, 0, translator.BitCoverage())
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}
	value, err := strconv.ParseUint(c.Value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse value: %w", err)
	}
	text, err := translator.FromUint64(value)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

// EncodeCmd translates a phrase back into its value.
type EncodeCmd struct {
	Translator string `short:"t" help:"Translator name (optional when the schema declares only one)"`
	Hex        bool   `help:"Print the value as hex-encoded bytes"`
	Phrase     string `arg:"" help:"Phrase to translate (quote it)"`
}

func (c *EncodeCmd) Run() error {
	translator, err := loadTranslator(c.Translator)
	if err != nil {
		return err
	}
	if c.Hex {
		buf := make([]byte, bitcodec.BytesForBits(translator.BitCoverage()))
		if err := translator.ToBytes(buf, c.Phrase, 0, translator.BitCoverage()); err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(buf))
		return nil
	}
	value, err := translator.ToUint64(c.Phrase)
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

// RandomCmd generates a random phrase from UUID entropy.
type RandomCmd struct {
	Translator string `short:"t" help:"Translator name (optional when the schema declares only one)"`
}

func (c *RandomCmd) Run() error {
	translator, err := loadTranslator(c.Translator)
	if err != nil {
		return err
	}
	entropy := uuid.New()
	if translator.BitCoverage() > len(entropy)*8 {
		return fmt.Errorf("translator covers %d bits, more than the %d random bits available",
			translator.BitCoverage(), len(entropy)*8)
	}
	text, err := translator.FromBytes(entropy[:], 0, translator.BitCoverage())
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

// SchemaValidateCmd verifies the schema and builds every translator.
type SchemaValidateCmd struct{}

func (c *SchemaValidateCmd) Run() error {
	translators, err := schema.Load(CLI.SchemaFile)
	if err != nil {
		return err
	}
	fmt.Printf("schema OK: %d translator(s): %s\n",
		len(translators), strings.Join(sortedNames(translators), ", "))
	return nil
}

// SchemaFingerprintCmd prints the word corpus fingerprint of each
// translator, for pinning in the schema's fingerprint field.
type SchemaFingerprintCmd struct{}

func (c *SchemaFingerprintCmd) Run() error {
	translators, err := schema.Load(CLI.SchemaFile)
	if err != nil {
		return err
	}
	for _, name := range sortedNames(translators) {
		fmt.Printf("%s %s\n", name, translators[name].Sequence().Fingerprint())
	}
	return nil
}

// SchemaOptimizeCmd prints the effective bit distribution of each
// translator, for pinning in the schema's bit_distribution field.
type SchemaOptimizeCmd struct{}

func (c *SchemaOptimizeCmd) Run() error {
	translators, err := schema.Load(CLI.SchemaFile)
	if err != nil {
		return err
	}
	for _, name := range sortedNames(translators) {
		translator := translators[name]
		widths := make([]string, 0, translator.Sequence().Len())
		for _, bits := range translator.IndexTranslator().BitDistribution() {
			widths = append(widths, strconv.Itoa(bits))
		}
		fmt.Printf("%s %d [%s]\n", name, translator.BitCoverage(), strings.Join(widths, " "))
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("phrasebit version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("phrasebit"),
		kong.Description("Deterministic translator between bit sequences and readable phrases"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), format)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
