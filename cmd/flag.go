package cmd

import (
	"github.com/spf13/pflag"
)

// PrepareFlags disables alphabetical sorting of flags in help output and
// manually adds a help flag to override Cobra's default help message. Cobra
// still implements the help logic automatically.
func PrepareFlags(flags *pflag.FlagSet, help *bool) {
	flags.SortFlags = false
	flags.BoolVarP(help, "help", "h", false, "Show help information")
}
