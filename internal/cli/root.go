// Package cli implements the lablog CLI commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lablog-io/lablog/internal/api"
	"github.com/lablog-io/lablog/internal/config"
	"github.com/lablog-io/lablog/internal/eventbus"
	"github.com/lablog-io/lablog/internal/logging"
	"github.com/lablog-io/lablog/internal/models"
)

var (
	flagServer string
	flagDebug  bool

	settings *models.Settings
	client   *api.Client
	bus      *eventbus.Bus
)

var rootCmd = &cobra.Command{
	Use:   "lablog",
	Short: "Write and browse electronic logbook entries from the terminal",
	Long: `Lablog is a terminal client for elog-style electronic logbooks.
It edits entries and followups interactively, stages attachments, and
manages logbook attribute schemas over the logbook server's REST API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsureGlobalDir(); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		var err error
		settings, err = config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		logPath, err := config.GlobalLogFile()
		if err == nil {
			// Logging is best-effort; the CLI works without a log file.
			_ = logging.Setup(logPath, flagDebug || settings.Debug)
		}

		client = api.New(config.ResolveServerURL(flagServer, settings))
		bus = eventbus.New()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Close()
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "logbook server URL (overrides settings)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(entryCmd)
	rootCmd.AddCommand(logbookCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}
