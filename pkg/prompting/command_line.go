package prompting

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mutagen-io/gopass"

	"github.com/mutagen-io/input/pkg/input"
)

// PromptCommandLineWithResponseMode performs command line prompting using the
// specified response mode. Echoed responses are read from standard input as a
// line (so they work with non-terminal input), while masked and secret
// responses are read from the terminal with echoing disabled.
func PromptCommandLineWithResponseMode(prompt string, mode ResponseMode) (string, error) {
	// Handle echoed responses.
	if mode == ResponseModeEcho {
		result, err := input.ReadLineWithPrompt(prompt)
		if err != nil {
			return "", errors.Wrap(err, "unable to read response")
		}
		return result, nil
	}

	// Figure out which getter to use.
	var getter func() ([]byte, error)
	if mode == ResponseModeMasked {
		getter = gopass.GetPasswdMasked
	} else {
		getter = gopass.GetPasswd
	}

	// Print the prompt.
	fmt.Print(prompt)

	// Get the result.
	result, err := getter()
	if err != nil {
		return "", errors.Wrap(err, "unable to read response")
	}

	// Success.
	return string(result), nil
}

// PromptCommandLine performs command line prompting using an automatically
// determined response mode.
func PromptCommandLine(prompt string) (string, error) {
	return PromptCommandLineWithResponseMode(prompt, DetermineResponseMode(prompt))
}

// CommandLinePrompter is a Prompter that prompts on the process' standard
// streams. Its zero value uses automatic response mode selection.
type CommandLinePrompter struct {
	// Mode is the response mode to use if Fixed is true.
	Mode ResponseMode
	// Fixed indicates that Mode should be used instead of automatic response
	// mode selection.
	Fixed bool
}

// Message implements Prompter.Message.
func (p *CommandLinePrompter) Message(message string) error {
	_, err := fmt.Println(message)
	return err
}

// Prompt implements Prompter.Prompt.
func (p *CommandLinePrompter) Prompt(prompt string) (string, error) {
	if p.Fixed {
		return PromptCommandLineWithResponseMode(prompt, p.Mode)
	}
	return PromptCommandLine(prompt)
}
