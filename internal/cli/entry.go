package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lablog-io/lablog/internal/config"
	"github.com/lablog-io/lablog/internal/render"
	"github.com/lablog-io/lablog/internal/submit"
	"github.com/lablog-io/lablog/internal/tui"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Write, answer and read logbook entries",
}

var entryNewCmd = &cobra.Command{
	Use:   "new <logbook-id>",
	Short: "Write a new entry in a logbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logbookID, err := parseID(args[0])
		if err != nil {
			return err
		}
		return runEntryEditor(submit.VariantNew, logbookID, 0)
	},
}

var entryFollowupCmd = &cobra.Command{
	Use:     "followup <logbook-id> <entry-id>",
	Aliases: []string{"answer", "reply"},
	Short:   "Answer an existing entry",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logbookID, entryID, err := parseIDPair(args)
		if err != nil {
			return err
		}
		return runEntryEditor(submit.VariantFollowup, logbookID, entryID)
	},
}

var entryEditCmd = &cobra.Command{
	Use:   "edit <logbook-id> <entry-id>",
	Short: "Edit an existing entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logbookID, entryID, err := parseIDPair(args)
		if err != nil {
			return err
		}
		return runEntryEditor(submit.VariantEdit, logbookID, entryID)
	},
}

var entryViewCmd = &cobra.Command{
	Use:     "view <logbook-id> <entry-id>",
	Aliases: []string{"show"},
	Short:   "Print an entry and its followup thread",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logbookID, entryID, err := parseIDPair(args)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		lb, err := client.FetchLogbook(ctx, logbookID)
		if err != nil {
			return err
		}
		entry, err := client.FetchEntry(ctx, logbookID, entryID)
		if err != nil {
			return err
		}

		fmt.Println(render.New(terminalWidth()).Entry(lb, entry))
		return nil
	},
}

func runEntryEditor(v submit.Variant, logbookID, entryID int64) error {
	dropDir, err := config.ResolveDropDir(settings)
	if err != nil {
		dropDir = ""
	}
	if dropDir != "" {
		if err := config.EnsureDropDir(dropDir); err != nil {
			dropDir = ""
		}
	}

	res, err := tui.RunEntryEditor(client, bus, dropDir, v, logbookID, entryID, settings.Editor.DefaultAuthors)
	if err != nil {
		return err
	}
	if res == nil {
		return nil
	}

	fmt.Println(styleSuccess.Render("Entry submitted:"), styleValue.Render(res.ViewPath))
	for _, f := range res.UploadFailures {
		fmt.Println(styleWarning.Render(fmt.Sprintf("  attachment %q failed to upload: %v", f.Filename, f.Err)))
	}
	return nil
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 100
	}
	return w
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func parseIDPair(args []string) (int64, int64, error) {
	logbookID, err := parseID(args[0])
	if err != nil {
		return 0, 0, err
	}
	entryID, err := parseID(args[1])
	if err != nil {
		return 0, 0, err
	}
	return logbookID, entryID, nil
}

func init() {
	entryCmd.AddCommand(entryNewCmd)
	entryCmd.AddCommand(entryFollowupCmd)
	entryCmd.AddCommand(entryEditCmd)
	entryCmd.AddCommand(entryViewCmd)
}
