package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal returns whether or not the specified file is attached to a
// terminal. Cygwin and MSYS2 pseudo-terminals are treated as terminals. A nil
// file is never a terminal.
func IsTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	descriptor := file.Fd()
	return isatty.IsTerminal(descriptor) || isatty.IsCygwinTerminal(descriptor)
}
