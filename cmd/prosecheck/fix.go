package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prosecheck/internal/action"
)

var fixCmd = &cobra.Command{
	Use:          "fix [paths...]",
	Short:        "Apply the first candidate of every suggestion (not implemented)",
	Long:         "Reserved for unsupervised fixing. The command fails instead of silently doing nothing; use interactive mode to apply replacements.",
	SilenceUsage: true,
	RunE:         runFix,
}

func runFix(cmd *cobra.Command, args []string) error {
	set, err := collect(cmd, args)
	if err != nil {
		return err
	}
	if set.Count() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No prose issues found.")
		return nil
	}
	return fmt.Errorf("cannot fix %d suggestions: %w", set.Count(), action.ErrNotImplemented)
}
