package terminal

import (
	"os"
	"testing"
)

// TestIsTerminalNil tests that a nil file is not classified as a terminal.
func TestIsTerminalNil(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("nil file classified as terminal")
	}
}

// TestIsTerminalPipe tests that pipes are not classified as terminals.
func TestIsTerminalPipe(t *testing.T) {
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatal("unable to create pipe:", err)
	}
	defer reader.Close()
	defer writer.Close()

	if IsTerminal(reader) {
		t.Error("pipe read end classified as terminal")
	}
	if IsTerminal(writer) {
		t.Error("pipe write end classified as terminal")
	}
}
