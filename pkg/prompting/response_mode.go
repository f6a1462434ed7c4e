package prompting

import (
	"fmt"
	"strings"
)

// ResponseMode encodes how a prompt response should be displayed and validated.
type ResponseMode uint8

const (
	// ResponseModeSecret indicates that a prompt response shouldn't be echoed.
	ResponseModeSecret ResponseMode = iota
	// ResponseModeMasked indicates that a prompt response should be masked.
	ResponseModeMasked
	// ResponseModeEcho indicates that a prompt response should be echoed.
	ResponseModeEcho
)

// String provides a human-readable representation of a response mode.
func (m ResponseMode) String() string {
	switch m {
	case ResponseModeSecret:
		return "secret"
	case ResponseModeMasked:
		return "masked"
	case ResponseModeEcho:
		return "echo"
	default:
		return "unknown"
	}
}

// ModeAutomatic is the textual mode that requests automatic response mode
// selection based on prompt text.
const ModeAutomatic = "auto"

// ParseResponseMode parses a textual response mode. It returns a boolean
// indicating whether or not the mode should instead be determined
// automatically from the prompt text (in which case the returned mode is
// irrelevant). An empty string is treated as "echo".
func ParseResponseMode(text string) (ResponseMode, bool, error) {
	switch text {
	case "", "echo":
		return ResponseModeEcho, false, nil
	case "masked":
		return ResponseModeMasked, false, nil
	case "secret":
		return ResponseModeSecret, false, nil
	case ModeAutomatic:
		return ResponseModeSecret, true, nil
	default:
		return ResponseModeSecret, false, fmt.Errorf("unknown response mode: %s", text)
	}
}

// echoedPromptSuffixes are the list of prompt suffixes known to be used by
// OpenSSH for which responses should be echoed.
var echoedPromptSuffixes = []string{
	"(yes/no)? ",
	"(yes/no): ",
	"(yes/no/[fingerprint])? ",
	"Please type 'yes', 'no' or the fingerprint: ",
}

// DetermineResponseMode attempts to determine the appropriate response mode for
// a prompt based on the prompt text.
func DetermineResponseMode(prompt string) ResponseMode {
	// Check if this is an echoed prompt.
	for _, suffix := range echoedPromptSuffixes {
		if strings.HasSuffix(prompt, suffix) {
			return ResponseModeEcho
		}
	}

	// Otherwise assume this is a secret prompt.
	return ResponseModeSecret
}
