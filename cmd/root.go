// Package cmd provides the CLI commands for the sprint application.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/sprint-cli/internal/adapters/tui"
	"github.com/xvierd/sprint-cli/internal/config"
	"github.com/xvierd/sprint-cli/internal/domain"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sprint [history]",
	Short: "Sprint - a focus timer for the command line",
	Long: `Sprint counts down a focus session for one task, cheers you on along the
way, and appends a line to sprint.log when you finish.

Run "sprint" to start a session, or "sprint history" to list recent ones.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices(cmd)
	},
	RunE: runSprint,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

func init() {
	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Sprint CLI\nVersion: {{.Version}}\n")

	// Only "history" is a word of its own; anything else starts a session,
	// including the words cobra would otherwise claim.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "no-help",
		Hidden: true,
		RunE:   runSprint,
	})

	rootCmd.AddCommand(historyCmd)
}

// runSprint configures and runs one focus session. Backing out of the
// prompts or interrupting the countdown is a normal exit.
func runSprint(cmd *cobra.Command, args []string) error {
	ctx, cancel := setupSignalHandler()
	defer cancel()

	session, err := app.sessions.Start(ctx, app.prompter)
	switch {
	case errors.Is(err, domain.ErrCancelled):
		app.logger.Debug("configuration cancelled")
		return nil
	case errors.Is(err, context.Canceled):
		app.logger.Debug("session interrupted")
		return nil
	case err != nil:
		return err
	}

	app.logger.Debug("session finished", "id", session.ID, "state", domain.GetStateLabel(app.sessions.State()))
	return nil
}

// formatError renders a fatal error in the theme's error color.
func formatError(err error) string {
	var theme *config.ThemeConfig
	if app.config != nil {
		theme = &app.config.Theme
	}
	return tui.NewPalette(theme).Error.Render("Error: " + err.Error())
}
