package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lablog-io/lablog/internal/updater"
)

var flagUpdateCheck bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update lablog to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(styleLabel.Render("Checking for updates..."))

		result, err := updater.CheckForUpdate()
		if err != nil {
			return fmt.Errorf("check for update: %w", err)
		}

		if !result.Available {
			fmt.Printf("%s %s\n",
				styleSuccess.Render("Already up to date:"),
				styleVersion.Render(result.CurrentVersion))
			return nil
		}

		fmt.Printf("%s %s %s %s\n",
			styleLabel.Render("Update available:"),
			styleValue.Render(result.CurrentVersion),
			styleLabel.Render("->"),
			styleVersion.Render(result.LatestVersion))

		if flagUpdateCheck {
			fmt.Println(styleHint.Render("Run 'lablog update' to install."))
			return nil
		}

		assetName := updater.AssetName()
		asset := updater.FindAsset(result.Release, assetName)
		if asset == nil {
			return fmt.Errorf("release %s has no asset %q, see %s",
				result.LatestVersion, assetName, result.ReleaseURL)
		}

		fmt.Printf("%s %s (%.1f MB)\n",
			styleLabel.Render("Downloading"),
			styleValue.Render(asset.Name),
			float64(asset.Size)/(1024*1024))

		tmpPath, err := updater.DownloadAsset(asset)
		if err != nil {
			return fmt.Errorf("download: %w", err)
		}
		defer os.Remove(tmpPath)

		exePath, err := os.Executable()
		if err != nil {
			return fmt.Errorf("locate current binary: %w", err)
		}

		if err := updater.ReplaceBinary(exePath, tmpPath); err != nil {
			return fmt.Errorf("install: %w", err)
		}

		fmt.Printf("%s %s\n",
			styleSuccess.Render("Updated to"),
			styleVersion.Render(result.LatestVersion))
		return nil
	},
}

func init() {
	updateCmd.Flags().BoolVar(&flagUpdateCheck, "check", false, "only check for a new version, do not install")
}
