package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/mutagen-io/input/pkg/logging"
	"github.com/mutagen-io/input/pkg/platform/terminal"
)

// ErrNoOutput is the error wrapped when a prompt is requested from a Reader
// that was created without an output stream.
var ErrNoOutput = errors.New("no output stream")

// flusher is the interface implemented by output streams that buffer writes.
type flusher interface {
	// Flush writes any buffered data to the underlying stream.
	Flush() error
}

// Reader reads lines from an input stream, optionally writing prompts to an
// output stream first. It buffers its input, so any data read past the end of
// a line is retained for subsequent reads. It is not safe for concurrent usage.
type Reader struct {
	// input is the buffered input stream.
	input *bufio.Reader
	// output is the prompt output stream. It may be nil.
	output io.Writer
	// logger is the underlying logger. It may be nil.
	logger *logging.Logger
}

// NewReader creates a new reader. The output stream may be nil if prompting
// isn't used. If the output stream implements a Flush method, it will be
// invoked after each prompt is written. The logger may be nil.
func NewReader(input io.Reader, output io.Writer, logger *logging.Logger) *Reader {
	return &Reader{
		input:  bufio.NewReader(input),
		output: output,
		logger: logger,
	}
}

// ReadLineWithPrompt writes the textual representation of prompt (as produced
// by fmt.Sprint) to the output stream without a trailing newline, flushes the
// output stream if it supports flushing, and then reads a line using ReadLine.
func (r *Reader) ReadLineWithPrompt(prompt interface{}) (string, error) {
	// Render the prompt.
	text := fmt.Sprint(prompt)

	// Write the prompt.
	if r.output == nil {
		return "", &Error{Operation: OperationWrite, Err: ErrNoOutput}
	} else if _, err := io.WriteString(r.output, text); err != nil {
		return "", &Error{Operation: OperationWrite, Err: err}
	}

	// Ensure that the prompt is visible before we block on input.
	if f, ok := r.output.(flusher); ok {
		if err := f.Flush(); err != nil {
			return "", &Error{Operation: OperationFlush, Err: err}
		}
	}
	r.logger.Tracef("Wrote prompt: %s", terminal.NeutralizeControlCharacters(text))

	// Read the response.
	return r.ReadLine()
}

// ReadLine blocks until a line terminated by "\n" is available or the end of
// the input stream is reached, and then returns the line with its terminator
// ("\n" or "\r\n") removed. The end of the input stream is not treated as an
// error: any unterminated data is returned as-is and an exhausted stream yields
// an empty string. Input that isn't valid UTF-8 results in an error.
func (r *Reader) ReadLine() (string, error) {
	// Read up to and including the next newline.
	line, err := r.input.ReadString('\n')
	if err == io.EOF {
		r.logger.Debugf("Reached end of input with %s unterminated", humanize.Bytes(uint64(len(line))))
	} else if err != nil {
		return "", &Error{Operation: OperationRead, Err: err}
	}

	// Validate the encoding.
	if _, _, err := transform.String(encoding.UTF8Validator, line); err != nil {
		return "", &Error{Operation: OperationDecode, Err: err}
	}

	// Remove the line terminator.
	result := TrimLineEnding(line)
	r.logger.Debugf("Read line (%s)", humanize.Bytes(uint64(len(line))))
	r.logger.Tracef("Line content: %s", terminal.NeutralizeControlCharacters(result))

	// Success.
	return result, nil
}
