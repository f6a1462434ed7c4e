package configuration

import (
	"os"

	"github.com/pkg/errors"

	"github.com/mutagen-io/input/pkg/encoding"
	"github.com/mutagen-io/input/pkg/prompting"
)

// Configuration is the YAML configuration object type for the input command.
type Configuration struct {
	// Prompt is the prompt to display before each read.
	Prompt string `yaml:"prompt"`
	// Message is a message to display once before prompting.
	Message string `yaml:"message"`
	// Mode is the textual response mode (see prompting.ParseResponseMode).
	Mode string `yaml:"mode"`
	// Count is the number of lines to read. A zero value indicates the
	// default.
	Count uint `yaml:"count"`
}

// Load attempts to load a YAML-based configuration file from the specified
// path. If the path is empty or the file doesn't exist, an empty configuration
// is returned.
func Load(path string) (*Configuration, error) {
	// Create the target configuration object.
	result := &Configuration{}

	// Handle the absence of a configuration file.
	if path == "" {
		return result, nil
	}

	// Attempt to load.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, errors.Wrapf(err, "unable to load configuration (%s)", path)
	}

	// Success.
	return result, nil
}

// EnsureValid ensures that Configuration's invariants are respected.
func (c *Configuration) EnsureValid() error {
	// A nil configuration is not considered valid.
	if c == nil {
		return errors.New("nil configuration")
	}

	// Verify that the response mode is valid.
	if _, _, err := prompting.ParseResponseMode(c.Mode); err != nil {
		return errors.Wrap(err, "invalid response mode")
	}

	// Success.
	return nil
}

// Merge merges two configurations of differing priorities. Non-zero fields in
// the higher-priority configuration take precedence. Both configurations must
// be non-nil.
func Merge(lower, higher *Configuration) *Configuration {
	// Create the resulting configuration.
	result := &Configuration{}

	// Merge individual fields.
	if higher.Prompt != "" {
		result.Prompt = higher.Prompt
	} else {
		result.Prompt = lower.Prompt
	}
	if higher.Message != "" {
		result.Message = higher.Message
	} else {
		result.Message = lower.Message
	}
	if higher.Mode != "" {
		result.Mode = higher.Mode
	} else {
		result.Mode = lower.Mode
	}
	if higher.Count != 0 {
		result.Count = higher.Count
	} else {
		result.Count = lower.Count
	}

	// Done.
	return result
}
