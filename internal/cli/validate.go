package cli

import (
	"fmt"

	"github.com/bannerlab/appdemos/internal/apps"
	"github.com/bannerlab/appdemos/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [manifest.json]",
	Short: "Validate web app manifests",
	Long: `Validate a manifest file against the web app manifest schema. Without an
argument, render every scenario that has a manifest and validate the result.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			result, err := manifest.ValidateFile(args[0])
			if err != nil {
				return err
			}
			printValidation(cmd, args[0], result)
			if !result.Valid {
				return result.Err()
			}
			m, err := manifest.ParseFile(args[0])
			if err != nil {
				return err
			}
			printRelatedApps(cmd, m)
			return nil
		}

		r, err := newRenderer()
		if err != nil {
			return err
		}
		failed := 0
		for _, e := range apps.Entries() {
			if !e.ManifestJSON {
				continue
			}
			// Page validates the manifest it renders.
			if _, err := r.Page(e.ID); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "  [FAIL] %s: %v\n", e.ID, err)
				failed++
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  [ OK ] %s\n", e.ID)
		}
		if failed > 0 {
			return fmt.Errorf("%d scenario manifests failed validation", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func printValidation(cmd *cobra.Command, path string, result *manifest.ValidationResult) {
	if result.Valid {
		fmt.Fprintf(cmd.OutOrStdout(), "  [ OK ] %s is valid\n", path)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  [FAIL] %s has %d issue(s):\n", path, len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(cmd.OutOrStdout(), "    - %s\n", issue)
	}
}

// printRelatedApps lists the declared related platforms and their store links.
func printRelatedApps(cmd *cobra.Command, m *manifest.WebAppManifest) {
	out := cmd.OutOrStdout()
	for _, platform := range []string{manifest.PlatformPlay, manifest.PlatformITunes, manifest.PlatformWebapp} {
		if m.HasPlatform(platform) {
			fmt.Fprintf(out, "    related app: %s\n", platform)
		}
	}
	for _, link := range m.StoreLinks() {
		fmt.Fprintf(out, "    store link: %s\n", link.URL)
	}
	if m.PreferRelatedApplications {
		fmt.Fprintln(out, "    prefers related applications")
	}
}
