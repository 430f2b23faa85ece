package wordfile

import (
	"database/sql"
	"fmt"

	"github.com/phrasebit/phrasebit/core/errors"
)

// wordsQuery reads the word column of a SQLite word file.
const wordsQuery = `SELECT word FROM words`

// ReadSQLite loads words from the words table of the SQLite database
// at path. The database is opened read-only. A repeated word is an
// error.
func ReadSQLite(path string) ([]string, error) {
	db, err := sql.Open(driverName, fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("open word database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(wordsQuery)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", path, err)
	}
	defer rows.Close()

	seen := make(map[string]bool)
	var list []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("scan %s: %w", path, err)
		}
		if seen[word] {
			return nil, &errors.DuplicateWordError{File: path, Word: word}
		}
		seen[word] = true
		list = append(list, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return list, nil
}
