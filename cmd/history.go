package cmd

import (
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the most recent sessions",
	Long: `List the most recently completed sessions from the log file, newest first.

Only the last 10 lines are shown by default (history.limit in the config file).`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.recent.Show(cmd.Context())
	},
}
