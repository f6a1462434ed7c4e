package cmd

import (
	"io"
	"log"

	"github.com/fatih/color"

	"github.com/mutagen-io/input/pkg/logging"
)

func init() {
	// Silence the default logger.
	log.SetOutput(io.Discard)
}

// ConfigureLogging creates a root logger at the specified level. If the
// resulting logger is enabled, the default logger is directed to standard
// error. The result may be nil (which is a valid, disabled logger).
func ConfigureLogging(level logging.Level, name string) *logging.Logger {
	logger := logging.NewLogger(level)
	if logger != nil {
		log.SetOutput(color.Error)
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}
	return logger.Sublogger(name)
}
