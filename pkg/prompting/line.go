package prompting

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/mutagen-io/input/pkg/input"
)

// LinePrompter is a Prompter that reads echoed responses from an input.Reader.
// It's used when input doesn't originate from a terminal.
type LinePrompter struct {
	// reader is the underlying line reader.
	reader *input.Reader
	// output is the stream to which messages are written.
	output io.Writer
}

// NewLinePrompter creates a new line prompter. Messages are written to output,
// which should be the same stream that reader writes its prompts to.
func NewLinePrompter(reader *input.Reader, output io.Writer) *LinePrompter {
	return &LinePrompter{
		reader: reader,
		output: output,
	}
}

// Message implements Prompter.Message.
func (p *LinePrompter) Message(message string) error {
	if _, err := fmt.Fprintln(p.output, message); err != nil {
		return errors.Wrap(err, "unable to write message")
	}
	return nil
}

// Prompt implements Prompter.Prompt.
func (p *LinePrompter) Prompt(prompt string) (string, error) {
	response, err := p.reader.ReadLineWithPrompt(prompt)
	if err != nil {
		return "", errors.Wrap(err, "unable to read response")
	}
	return response, nil
}
