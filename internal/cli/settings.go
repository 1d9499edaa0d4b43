package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lablog-io/lablog/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"configure", "config"},
	Short:   "Configure lablog settings",
	Long: `Configure lablog settings interactively.

This allows you to modify:
  - Server URL
  - Default authors for new entries
  - Attachment drop directory
  - Debug logging

Press Enter to keep the current value for any setting.`,
	RunE: runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)
	changed := false

	fmt.Printf("Server URL [%s]: ", settings.Server.URL)
	url, _ := reader.ReadString('\n')
	url = strings.TrimSpace(url)
	if url != "" && url != settings.Server.URL {
		settings.Server.URL = url
		changed = true
	}

	current := strings.Join(settings.Editor.DefaultAuthors, ", ")
	fmt.Printf("Default authors (comma-separated) [%s]: ", current)
	authors, _ := reader.ReadString('\n')
	authors = strings.TrimSpace(authors)
	if authors != "" && authors != current {
		settings.Editor.DefaultAuthors = splitAuthors(authors)
		changed = true
	}

	fmt.Printf("Attachment drop directory (\"-\" disables) [%s]: ", settings.Attachments.DropDir)
	dropDir, _ := reader.ReadString('\n')
	dropDir = strings.TrimSpace(dropDir)
	if dropDir != "" && dropDir != settings.Attachments.DropDir {
		settings.Attachments.DropDir = dropDir
		changed = true
	}

	newDebug := promptYesNoWithCurrent(reader, "Enable debug logging?", settings.Debug)
	if newDebug != settings.Debug {
		settings.Debug = newDebug
		changed = true
	}

	if !changed {
		fmt.Println("\nNo changes made.")
		return nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("\nSettings updated.")
	return nil
}

func splitAuthors(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// promptYesNoWithCurrent prompts for a yes/no value showing the current value.
func promptYesNoWithCurrent(reader *bufio.Reader, prompt string, current bool) bool {
	currentStr := "no"
	if current {
		currentStr = "yes"
	}

	fmt.Printf("  %s [%s]: ", prompt, currentStr)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))

	if response == "" {
		return current
	}
	return response == "y" || response == "yes"
}
