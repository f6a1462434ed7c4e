package input

import (
	"os"
	"sync"

	"github.com/mutagen-io/input/pkg/logging"
)

// standard holds the process-wide reader over the standard streams.
var standard struct {
	// Mutex serializes access to the standard streams.
	sync.Mutex
	// input is the file from which the reader was created.
	input *os.File
	// logger is the logger used for the standard reader.
	logger *logging.Logger
	// reader is the standard reader.
	reader *Reader
}

// SetStandardLogger sets the logger used by ReadLine and ReadLineWithPrompt.
// The logger may be nil.
func SetStandardLogger(logger *logging.Logger) {
	standard.Lock()
	defer standard.Unlock()
	standard.logger = logger
	if standard.reader != nil {
		standard.reader.logger = logger
	}
}

// standardReader returns the reader over the current standard streams. The
// reader's input buffer is retained across calls unless os.Stdin has been
// reassigned. It must be called with the standard lock held.
func standardReader() *Reader {
	if standard.reader == nil || standard.input != os.Stdin {
		standard.input = os.Stdin
		standard.reader = NewReader(os.Stdin, os.Stdout, standard.logger)
	}
	standard.reader.output = os.Stdout
	return standard.reader
}

// ReadLine reads a line from standard input. It has the same semantics as
// Reader.ReadLine. Concurrent callers are serialized.
func ReadLine() (string, error) {
	standard.Lock()
	defer standard.Unlock()
	return standardReader().ReadLine()
}

// ReadLineWithPrompt writes a prompt to standard output and then reads a line
// from standard input. It has the same semantics as Reader.ReadLineWithPrompt.
// Concurrent callers are serialized.
func ReadLineWithPrompt(prompt interface{}) (string, error) {
	standard.Lock()
	defer standard.Unlock()
	return standardReader().ReadLineWithPrompt(prompt)
}
