package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"prosecheck/internal/checker"
	"prosecheck/internal/config"
	"prosecheck/internal/doc"
	"prosecheck/internal/suggest"
	"prosecheck/internal/trace"
)

// setup reads the persistent flags shared by every run mode and resolves
// the effective configuration. Called before gathering documentation.
func setup(cmd *cobra.Command) (*config.Config, error) {
	root := cmd.Root()

	levelStr, err := root.PersistentFlags().GetString("log-level")
	if err != nil {
		return nil, err
	}
	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	trace.SetLevel(level)

	noColor, err := root.PersistentFlags().GetBool("no-color")
	if err != nil {
		return nil, err
	}
	if noColor || !isTerminal(os.Stderr) {
		color.NoColor = true
	}

	explicit, err := root.PersistentFlags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Discover(explicit)
}

// gather collects documentation from the positional arguments, defaulting
// to the current directory.
func gather(args []string, cfg *config.Config) (*doc.Documentation, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	return doc.Gather(args, cfg.Markers)
}

// collect runs the full read-side pipeline: flags, config, gathering and
// every enabled checker.
func collect(cmd *cobra.Command, args []string) (*suggest.SuggestionSet, error) {
	cfg, err := setup(cmd)
	if err != nil {
		return nil, err
	}
	docs, err := gather(args, cfg)
	if err != nil {
		return nil, err
	}
	return checker.Run(docs, cfg), nil
}

var configCmd = &cobra.Command{
	Use:          "config",
	Short:        "Print the effective configuration",
	Long:         "Resolve the configuration the same way check does and print it as TOML.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return err
	}
	switch path, ok, findErr := config.Find("."); {
	case explicit != "":
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", explicit)
	case findErr == nil && ok:
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", path)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), "# built-in defaults (no prosecheck.toml found)")
	}
	return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
}
