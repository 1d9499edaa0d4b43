package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lablog-io/lablog/internal/tui"
)

var flagLogbookParent int64

var logbookCmd = &cobra.Command{
	Use:   "logbook",
	Short: "Create, edit and inspect logbooks",
}

var logbookNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a logbook, top-level or under a parent",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var parentID *int64
		if flagLogbookParent > 0 {
			parentID = &flagLogbookParent
		}

		lb, err := tui.RunLogbookEditor(client, bus, false, 0, parentID)
		if err != nil {
			return err
		}
		if lb == nil {
			return nil
		}
		fmt.Println(styleSuccess.Render("Logbook created:"), styleValue.Render(fmt.Sprintf("%s (id %d)", lb.Name, lb.ID)))
		return nil
	},
}

var logbookEditCmd = &cobra.Command{
	Use:   "edit <logbook-id>",
	Short: "Edit a logbook's name, template and attributes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logbookID, err := parseID(args[0])
		if err != nil {
			return err
		}

		lb, err := tui.RunLogbookEditor(client, bus, true, logbookID, nil)
		if err != nil {
			return err
		}
		if lb == nil {
			return nil
		}
		fmt.Println(styleSuccess.Render("Logbook updated:"), styleValue.Render(lb.Name))
		return nil
	},
}

var logbookShowCmd = &cobra.Command{
	Use:   "show <logbook-id>",
	Short: "Print a logbook's schema and children",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logbookID, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		lb, err := client.FetchLogbook(ctx, logbookID)
		if err != nil {
			return err
		}

		fmt.Println(styleBrand.Render(lb.Name), styleLabel.Render(fmt.Sprintf("(id %d)", lb.ID)))
		if lb.Description != "" {
			fmt.Println(lb.Description)
		}

		if len(lb.Attributes) > 0 {
			fmt.Println()
			fmt.Println(styleLabel.Render("Attributes:"))
			for _, attr := range lb.Attributes {
				line := fmt.Sprintf("  %s  %s", styleValue.Render(attr.Name), styleLabel.Render(string(attr.Type)))
				if attr.Required {
					line += styleError.Render(" *")
				}
				if len(attr.Options) > 0 {
					line += styleHint.Render(fmt.Sprintf("  %v", attr.Options))
				}
				fmt.Println(line)
			}
		}

		if len(lb.Children) > 0 {
			fmt.Println()
			fmt.Println(styleLabel.Render("Children:"))
			for _, child := range lb.Children {
				fmt.Printf("  %s %s\n", styleLabel.Render(fmt.Sprintf("%d", child.ID)), styleValue.Render(child.Name))
			}
		}
		return nil
	},
}

func init() {
	logbookNewCmd.Flags().Int64Var(&flagLogbookParent, "parent", 0, "create as a child of this logbook")

	logbookCmd.AddCommand(logbookNewCmd)
	logbookCmd.AddCommand(logbookEditCmd)
	logbookCmd.AddCommand(logbookShowCmd)
}
