package prompting

import (
	"io"
	"os"
	"testing"
)

// NOTE: Masked and secret responses are read by gopass directly from the
// terminal, so only echoed prompting is tested here.

// TestPromptCommandLineEcho tests echoed command line prompting against
// redirected standard streams.
func TestPromptCommandLineEcho(t *testing.T) {
	// Create and populate the input pipe.
	stdinReader, stdinWriter, err := os.Pipe()
	if err != nil {
		t.Fatal("unable to create input pipe:", err)
	}
	defer stdinReader.Close()
	if _, err := io.WriteString(stdinWriter, "yes\nno\n"); err != nil {
		t.Fatal("unable to write input:", err)
	} else if err := stdinWriter.Close(); err != nil {
		t.Fatal("unable to close input pipe:", err)
	}

	// Create the output pipe.
	stdoutReader, stdoutWriter, err := os.Pipe()
	if err != nil {
		t.Fatal("unable to create output pipe:", err)
	}
	defer stdoutReader.Close()

	// Swap the standard streams.
	originalStdin, originalStdout := os.Stdin, os.Stdout
	os.Stdin, os.Stdout = stdinReader, stdoutWriter
	defer func() {
		os.Stdin, os.Stdout = originalStdin, originalStdout
	}()

	// Prompt using automatic and fixed response modes.
	first, firstErr := PromptCommandLine("Continue? (yes/no)? ")
	prompter := &CommandLinePrompter{Mode: ResponseModeEcho, Fixed: true}
	second, secondErr := prompter.Prompt("Again? ")
	stdoutWriter.Close()

	// Verify results.
	if firstErr != nil {
		t.Fatal("unable to prompt:", firstErr)
	} else if first != "yes" {
		t.Error("response mismatch:", first, "!=", "yes")
	}
	if secondErr != nil {
		t.Fatal("unable to prompt:", secondErr)
	} else if second != "no" {
		t.Error("response mismatch:", second, "!=", "no")
	}
	written, err := io.ReadAll(stdoutReader)
	if err != nil {
		t.Fatal("unable to read output:", err)
	} else if string(written) != "Continue? (yes/no)? Again? " {
		t.Errorf("prompt output mismatch: %q", written)
	}
}
