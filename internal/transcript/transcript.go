package transcript

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cruciblehq/forgeup/internal/paths"
)

// Timestamp layout for transcript file names.
const stampLayout = "20060102-150405"

// An append-only log file for one run.
type Transcript struct {
	file    *os.File  // Open transcript file.
	console io.Writer // Console stream mirrored by Writer.
}

// Opens a new transcript under the given directory.
//
// The directory is created if needed. The file name embeds the wall-clock
// start of the run, e.g. "forgeup-20240131-154512.log". The file is opened
// in append mode so nothing written to it is ever overwritten.
func Open(dir string) (*Transcript, error) {
	if err := os.MkdirAll(dir, paths.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscript, err)
	}

	name := fmt.Sprintf("forgeup-%s.log", time.Now().Format(stampLayout))
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, paths.DefaultFileMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscript, err)
	}

	return &Transcript{file: file, console: os.Stderr}, nil
}

// Returns the path of the transcript file.
func (t *Transcript) Path() string {
	return t.file.Name()
}

// Returns the open transcript file.
func (t *Transcript) File() io.Writer {
	return t.file
}

// Returns a writer that duplicates everything to the console and the
// transcript file. External command output goes through this writer.
func (t *Transcript) Writer() io.Writer {
	return io.MultiWriter(t.console, t.file)
}

// Closes the transcript file.
func (t *Transcript) Close() error {
	return t.file.Close()
}
