package terminal

import (
	"strings"
)

// controlCharacterNeutralizer is a string replacer that neutralizes terminal
// control characters and line terminators so that untrusted text can be
// embedded in a single log line.
var controlCharacterNeutralizer = strings.NewReplacer(
	"\x1b", "^[",
	"\r", "\\r",
	"\n", "\\n",
	"\x07", "^G",
	"\b", "^H",
)

// NeutralizeControlCharacters returns a copy of a string with any terminal
// control characters neutralized.
func NeutralizeControlCharacters(value string) string {
	return controlCharacterNeutralizer.Replace(value)
}
