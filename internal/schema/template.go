package schema

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/phrasebit/phrasebit/core/errors"
)

// formatGrammar is the participle grammar for phrase-format templates.
// A template is literal text interleaved with <provider> slots, e.g.
// "<animal> likes <food>."
//
//nolint:govet // participle grammar tags are not standard struct tags
type formatGrammar struct {
	Parts []formatPart `@@+`
}

//nolint:govet // participle grammar tags are not standard struct tags
type formatPart struct {
	Slot *string `  @Slot`
	Text *string `| @Text`
}

var formatLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Slot", Pattern: `<[^<>]+>`},
	{Name: "Text", Pattern: `[^<>]+`},
})

var formatParser = participle.MustBuild[formatGrammar](
	participle.Lexer(formatLexer),
)

// ParseFormat parses a phrase-format template into the provider names
// of its slots and the surrounding separator list, in order. The
// separator list is one longer than the provider list: the text before
// the first slot (possibly empty), the text between consecutive slots,
// and the text after the last slot (possibly empty).
func ParseFormat(format string) (providers, separators []string, err error) {
	if format == "" {
		return nil, nil, &errors.SchemaError{Key: "format", Reason: "format must not be empty"}
	}
	parsed, perr := formatParser.ParseString("", format)
	if perr != nil {
		return nil, nil, &errors.SchemaError{Key: "format", Reason: perr.Error()}
	}

	separator := ""
	for _, part := range parsed.Parts {
		switch {
		case part.Slot != nil:
			name := strings.TrimSuffix(strings.TrimPrefix(*part.Slot, "<"), ">")
			providers = append(providers, name)
			separators = append(separators, separator)
			separator = ""
		case part.Text != nil:
			separator += *part.Text
		}
	}
	separators = append(separators, separator)

	if len(providers) == 0 {
		return nil, nil, &errors.SchemaError{Key: "format", Reason: "format needs at least one <provider> slot"}
	}
	return providers, separators, nil
}
