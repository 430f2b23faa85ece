package wordfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/phrasebit/phrasebit/core/errors"
)

// ReadXML loads words from an XML file, one word per node matched by
// the XPath expression expr. The node's inner text is the word,
// trimmed of surrounding whitespace. A repeated word is an error.
func ReadXML(path, expr string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	nodes, err := xmlquery.QueryAll(doc, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath %q: %w", expr, err)
	}

	seen := make(map[string]bool)
	var list []string
	for _, node := range nodes {
		word := strings.TrimSpace(node.InnerText())
		if word == "" {
			continue
		}
		if seen[word] {
			return nil, &errors.DuplicateWordError{File: path, Word: word}
		}
		seen[word] = true
		list = append(list, word)
	}
	return list, nil
}
