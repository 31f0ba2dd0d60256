package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prosecheck/internal/action"
	"prosecheck/internal/ui"
)

var interactiveCmd = &cobra.Command{
	Use:          "interactive [paths...]",
	Aliases:      []string{"i"},
	Short:        "Pick replacements one suggestion at a time",
	Long:         "Walk through every suggestion, choose a candidate or type a custom replacement, then write the approved edits back to the files.",
	SilenceUsage: true,
	RunE:         runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	// the picker takes over the terminal in raw mode
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return fmt.Errorf("interactive mode requires a terminal on stdin and stdout")
	}

	set, err := collect(cmd, args)
	if err != nil {
		return err
	}
	if set.Count() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No prose issues found.")
		return nil
	}

	picked, err := ui.Run(set)
	if err != nil {
		return err
	}
	if picked.Count() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing selected, files left untouched.")
		return nil
	}
	if err := action.WriteChanges(picked); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Done.")
	return nil
}
