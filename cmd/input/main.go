package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/input/cmd"
	"github.com/mutagen-io/input/pkg/configuration"
	"github.com/mutagen-io/input/pkg/environment"
	"github.com/mutagen-io/input/pkg/input"
	"github.com/mutagen-io/input/pkg/logging"
	"github.com/mutagen-io/input/pkg/platform/terminal"
	"github.com/mutagen-io/input/pkg/prompting"
)

// defaultCount is the number of lines read if no count is specified.
const defaultCount = 1

// resolveConfiguration computes the effective configuration from (in order of
// increasing precedence) the environment, the configuration file, and the
// command line.
func resolveConfiguration(arguments []string, variables map[string]string) (*configuration.Configuration, error) {
	// Extract defaults from the environment.
	environmentConfiguration := &configuration.Configuration{
		Prompt: variables[environment.PromptVariable],
		Mode:   variables[environment.ModeVariable],
	}

	// Load the configuration file.
	fileConfiguration, err := configuration.Load(rootConfiguration.configurationFile)
	if err != nil {
		return nil, err
	}

	// Extract command line settings.
	commandLineConfiguration := &configuration.Configuration{
		Message: rootConfiguration.message,
		Mode:    rootConfiguration.mode,
		Count:   rootConfiguration.count,
	}
	if len(arguments) == 1 {
		commandLineConfiguration.Prompt = arguments[0]
	}

	// Merge and validate.
	result := configuration.Merge(
		configuration.Merge(environmentConfiguration, fileConfiguration),
		commandLineConfiguration,
	)
	if err := result.EnsureValid(); err != nil {
		return nil, err
	}
	if result.Count == 0 {
		result.Count = defaultCount
	}

	// Success.
	return result, nil
}

// createPrompter creates the prompter appropriate for the specified response
// mode. Modes that disable echoing require a terminal, so they fall back to
// echoed line reading if standard input isn't one.
func createPrompter(mode string, logger *logging.Logger) prompting.Prompter {
	// Parse the mode. It has already been validated.
	responseMode, automatic, _ := prompting.ParseResponseMode(mode)

	// Handle echoed responses.
	if !automatic && responseMode == prompting.ResponseModeEcho {
		return &prompting.CommandLinePrompter{Mode: responseMode, Fixed: true}
	}

	// Handle non-terminal input.
	if !terminal.IsTerminal(os.Stdin) {
		logger.Warn(errors.New("standard input is not a terminal"))
		cmd.Warning("standard input is not a terminal, responses will be echoed")
		reader := input.NewReader(os.Stdin, os.Stdout, logger.Sublogger("fallback"))
		return prompting.NewLinePrompter(reader, os.Stdout)
	}

	// Use terminal-based prompting.
	return &prompting.CommandLinePrompter{Mode: responseMode, Fixed: !automatic}
}

// rootMain is the entry point for the root command.
func rootMain(_ *cobra.Command, arguments []string) error {
	// Load the environment.
	variables, err := environment.Load(rootConfiguration.environmentFile)
	if err != nil {
		return errors.Wrap(err, "unable to load environment")
	}

	// Configure logging.
	levelName := rootConfiguration.logLevel
	if levelName == "" {
		levelName = variables[environment.LogLevelVariable]
	}
	level := logging.LevelDisabled
	if levelName != "" {
		var ok bool
		if level, ok = logging.NameToLevel(levelName); !ok {
			return fmt.Errorf("invalid log level: %s", levelName)
		}
	}
	logger := cmd.ConfigureLogging(level, "input")
	input.SetStandardLogger(logger.Sublogger("stdin"))

	// Compute the effective configuration.
	settings, err := resolveConfiguration(arguments, variables)
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	logger.Infof("Reading %d line(s) with mode \"%s\"", settings.Count, settings.Mode)

	// Create the prompter.
	prompter := createPrompter(settings.Mode, logger)

	// Print the message, if any.
	if settings.Message != "" {
		if err := prompter.Message(settings.Message); err != nil {
			return errors.Wrap(err, "unable to print message")
		}
	}

	// Read and print lines.
	for i := uint(0); i < settings.Count; i++ {
		line, err := prompter.Prompt(settings.Prompt)
		if err != nil {
			return errors.Wrap(err, "unable to read line")
		}
		if err := cmd.Print(line); err != nil {
			return errors.Wrap(err, "unable to print line")
		}
	}

	// Success.
	return nil
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:   "input [<prompt>]",
	Short: "Read lines from standard input, optionally after printing a prompt",
	Long: `Read lines from standard input, optionally after printing a prompt.

Each line read has its trailing line ending ("\n" or "\r\n") removed and is then
printed to standard output. The end of input is not an error: it yields an
empty line.`,
	Args: cobra.MaximumNArgs(1),
	Run:  cmd.Mainify(rootMain),
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// mode is the response mode.
	mode string
	// count is the number of lines to read.
	count uint
	// message is a message to print before prompting.
	message string
	// configurationFile is the path to a YAML configuration file.
	configurationFile string
	// environmentFile is the path to a dotenv file.
	environmentFile string
	// logLevel is the log level name.
	logLevel string
}

func init() {
	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Set up the help flag.
	cmd.PrepareFlags(flags, &rootConfiguration.help)

	// Wire up flags.
	flags.StringVar(&rootConfiguration.mode, "mode", "", "Specify the response mode (echo|masked|secret|auto) (default echo)")
	flags.UintVarP(&rootConfiguration.count, "count", "n", 0, "Specify the number of lines to read (default 1)")
	flags.StringVar(&rootConfiguration.message, "message", "", "Specify a message to print before prompting")
	flags.StringVarP(&rootConfiguration.configurationFile, "configuration", "c", "", "Specify a YAML configuration file")
	flags.StringVar(&rootConfiguration.environmentFile, "env-file", ".env", "Specify an environment file")
	flags.StringVar(&rootConfiguration.logLevel, "log-level", "", "Set the log level (disabled|error|warn|info|debug|trace)")

	// Register commands.
	rootCommand.AddCommand(versionCommand)
}

func main() {
	// Execute the root command. Cobra prints its own errors.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
