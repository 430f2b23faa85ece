package wordfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/phrasebit/phrasebit/core/errors"
)

// ReadText loads a newline-separated word list. Files ending in .xz
// are decompressed transparently. Every line is one word, taken
// verbatim: any character except the line break is allowed, whitespace
// and punctuation included. A repeated line is an error.
func ReadText(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		reader = xzr
	}
	return scanWords(reader, path)
}

// scanWords reads one word per line from reader, rejecting duplicates.
// Lines are not trimmed; only the line break (and a preceding \r) is
// stripped. name identifies the source in errors.
func scanWords(reader io.Reader, name string) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	seen := make(map[string]bool)
	var list []string
	for scanner.Scan() {
		word := scanner.Text()
		if seen[word] {
			return nil, &errors.DuplicateWordError{File: name, Word: word}
		}
		seen[word] = true
		list = append(list, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return list, nil
}
