package environment

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	// PromptVariable is the environment variable that specifies a default
	// prompt.
	PromptVariable = "INPUT_PROMPT"
	// ModeVariable is the environment variable that specifies a default
	// response mode.
	ModeVariable = "INPUT_MODE"
	// LogLevelVariable is the environment variable that specifies a default log
	// level.
	LogLevelVariable = "INPUT_LOG_LEVEL"
)

// Load loads a "dotenv" environment variable file from disk and updates it to
// include variables from the current process' environment (with the current
// process' environment taking precedence). If the path is empty or the target
// file doesn't exist, then the result is the current process' environment.
func Load(path string) (map[string]string, error) {
	// Load the environment file, if any.
	var environment map[string]string
	if path != "" {
		var err error
		environment, err = godotenv.Read(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("unable to load environment file (%s): %w", path, err)
		}
	}

	// If the environment wasn't allocated, then use the OS environment alone.
	if environment == nil {
		return ToMap(os.Environ()), nil
	}

	// Add environment variables from the OS.
	for key, value := range ToMap(os.Environ()) {
		environment[key] = value
	}

	// Success.
	return environment, nil
}
