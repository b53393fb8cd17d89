package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenCreatesTimestampedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	tr, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer tr.Close()

	name := filepath.Base(tr.Path())
	if !strings.HasPrefix(name, "forgeup-") || !strings.HasSuffix(name, ".log") {
		t.Fatalf("file name = %q, want forgeup-<stamp>.log", name)
	}
	if filepath.Dir(tr.Path()) != dir {
		t.Fatalf("transcript in %q, want %q", filepath.Dir(tr.Path()), dir)
	}
}

func TestWriterAppendsToFile(t *testing.T) {
	tr, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// Console output goes to the test process's stderr here; the file copy
	// is what we verify.
	if _, err := tr.Writer().Write([]byte("first\n")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := tr.Writer().Write([]byte("second\n")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(tr.Path())
	if err != nil {
		t.Fatalf("read transcript: %v", err)
	}
	if string(data) != "first\nsecond\n" {
		t.Fatalf("transcript = %q, want both writes in order", data)
	}
}
