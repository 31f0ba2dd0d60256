package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"prosecheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "prosecheck",
	Short: "Spell and grammar checker for code documentation",
	Long:  `prosecheck checks doc comments and markdown files for spelling and grammar mistakes`,
}

// main registers subcommands and persistent flags, then executes the root
// command. Any error from a subcommand exits the process with status 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a prosecheck.toml (default: discovered upward from the working directory)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log verbosity (off|error|warn|info|debug)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
