package input

import (
	"strings"
)

// TrimLineEnding removes a single trailing "\n" from a line, followed by a
// single trailing "\r" if one precedes it. A carriage return without a
// following newline is left intact.
func TrimLineEnding(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	line = line[:len(line)-1]
	return strings.TrimSuffix(line, "\r")
}
