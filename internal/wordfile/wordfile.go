// Package wordfile loads word lists from plain text, xz-compressed
// text, XML, and SQLite sources. The loaded lists feed word providers;
// ordering is up to the provider, so words are returned in file order.
package wordfile

import (
	"path/filepath"
	"strings"
)

// DefaultXPath selects the word elements of an XML word file.
const DefaultXPath = "//word"

// Read loads the words from the file at path. The format follows the
// file extension: .xml files are queried with DefaultXPath; .db,
// .sqlite and .sqlite3 files are read from a words table; .xz files
// are decompressed newline lists; everything else is a newline list.
func Read(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return ReadXML(path, DefaultXPath)
	case ".db", ".sqlite", ".sqlite3":
		return ReadSQLite(path)
	default:
		return ReadText(path)
	}
}
