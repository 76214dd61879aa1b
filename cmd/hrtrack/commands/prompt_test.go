package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadPassword_PipedLine(t *testing.T) {
	var prompt bytes.Buffer
	got, err := readPassword(strings.NewReader("hunter2\r\nrest\n"), &prompt, "password: ")
	if err != nil {
		t.Fatalf("readPassword: %v", err)
	}
	if got != "hunter2" {
		t.Fatalf("want hunter2, got %q", got)
	}
	if prompt.String() != "password: " {
		t.Fatalf("unexpected prompt %q", prompt.String())
	}
}

func TestReadPassword_FileWithoutNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pw")
	if err := os.WriteFile(path, []byte("s3cret"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	// A regular file is not a terminal, so it is read as a plain line.
	got, err := readPassword(f, &bytes.Buffer{}, "")
	if err != nil {
		t.Fatalf("readPassword: %v", err)
	}
	if got != "s3cret" {
		t.Fatalf("want s3cret, got %q", got)
	}
}

func TestReadPassword_EmptyInputFails(t *testing.T) {
	if _, err := readPassword(strings.NewReader(""), &bytes.Buffer{}, ""); err == nil {
		t.Fatal("want an error on empty input")
	}
}
