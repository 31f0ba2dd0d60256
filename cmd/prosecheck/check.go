package main

import (
	"github.com/spf13/cobra"

	"prosecheck/internal/action"
)

var checkCmd = &cobra.Command{
	Use:          "check [paths...]",
	Short:        "Report prose issues in documentation",
	Long:         "Gather documentation from the given files or directories, run every enabled checker, and print each suggestion. Exits non-zero when issues are found.",
	SilenceUsage: true,
	RunE:         runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	set, err := collect(cmd, args)
	if err != nil {
		return err
	}
	return action.RunCheck(set)
}
