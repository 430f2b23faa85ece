package wordfile

import (
	"database/sql"
	goerrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/phrasebit/phrasebit/core/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadText(t *testing.T) {
	path := writeFile(t, "words.txt", "apple\nbanana\ncherry\n")
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"apple", "banana", "cherry"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read = %v; want %v", got, want)
	}
}

func TestReadTextKeepsLinesVerbatim(t *testing.T) {
	path := writeFile(t, "words.txt", " a\na \na b!\n\tc\n")
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	// edge whitespace is part of the word, so " a" and "a " are distinct
	want := []string{" a", "a ", "a b!", "\tc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read = %q; want %q", got, want)
	}
}

func TestReadTextCRLF(t *testing.T) {
	path := writeFile(t, "words.txt", "one\r\ntwo\r\n")
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"one", "two"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read = %q; want %q", got, want)
	}
}

func TestReadTextDuplicate(t *testing.T) {
	path := writeFile(t, "words.txt", "apple\nbanana\napple\n")
	_, err := Read(path)
	var derr *errors.DuplicateWordError
	if !goerrors.As(err, &derr) {
		t.Fatalf("Read err = %v; want DuplicateWordError", err)
	}
	if derr.Word != "apple" {
		t.Errorf("Word = %q; want %q", derr.Word, "apple")
	}
	if !goerrors.Is(err, errors.ErrConfiguration) {
		t.Errorf("Read err = %v; want ErrConfiguration", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "no-such-file.txt")); err == nil {
		t.Error("Read of a missing file succeeded")
	}
}

func TestReadXZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt.xz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	xw, err := xz.NewWriter(f)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := xw.Write([]byte("one\ntwo\nthree\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := xw.Close(); err != nil {
		t.Fatalf("close xz: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read = %v; want %v", got, want)
	}
}

func TestReadXML(t *testing.T) {
	path := writeFile(t, "words.xml", `<?xml version="1.0"?>
<wordlist>
  <word>alpha</word>
  <word> beta </word>
  <word>gamma</word>
</wordlist>`)
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read = %v; want %v", got, want)
	}
}

func TestReadXMLCustomXPath(t *testing.T) {
	path := writeFile(t, "words.xml", `<terms>
  <term name="one"><text>uno</text></term>
  <term name="two"><text>dos</text></term>
</terms>`)
	got, err := ReadXML(path, "//term/text")
	if err != nil {
		t.Fatalf("ReadXML: %v", err)
	}
	want := []string{"uno", "dos"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadXML = %v; want %v", got, want)
	}
}

func TestReadXMLBadXPath(t *testing.T) {
	path := writeFile(t, "words.xml", `<wordlist><word>a</word></wordlist>`)
	if _, err := ReadXML(path, "//word["); err == nil {
		t.Error("ReadXML with a broken expression succeeded")
	}
}

func TestReadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.db")
	db, err := sql.Open(driverName, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE words (word TEXT NOT NULL)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	for _, word := range []string{"red", "green", "blue"} {
		if _, err := db.Exec(`INSERT INTO words (word) VALUES (?)`, word); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"red", "green", "blue"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read = %v; want %v", got, want)
	}
}

func TestReadSQLiteDuplicate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.sqlite")
	db, err := sql.Open(driverName, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE words (word TEXT NOT NULL)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	for _, word := range []string{"red", "red"} {
		if _, err := db.Exec(`INSERT INTO words (word) VALUES (?)`, word); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	_, rerr := Read(path)
	var derr *errors.DuplicateWordError
	if !goerrors.As(rerr, &derr) {
		t.Fatalf("Read err = %v; want DuplicateWordError", rerr)
	}
	if derr.Word != "red" {
		t.Errorf("Word = %q; want %q", derr.Word, "red")
	}
}
