package cli

import (
	"fmt"

	"github.com/bannerlab/appdemos/internal/config"
	"github.com/bannerlab/appdemos/internal/site"
	"github.com/spf13/cobra"
)

var (
	generateOut   string
	generateOnly  []string
	generateForce bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the demo site to a directory",
	Long: `Render every scenario (or the ones named with --only) into a static site.

Examples:
  appdemos generate --out ./site
  appdemos generate --only web,web_broken`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := generateOut
		if out == "" {
			out = config.OutputDir()
		}

		r, err := newRenderer()
		if err != nil {
			return err
		}
		result, err := site.Generate(cmd.Context(), r, out, site.Options{
			Version: buildVersion,
			Only:    generateOnly,
			Force:   generateForce,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Generated %d scenarios (%d files) in %s\n",
			len(result.Scenarios), len(result.Files), result.OutputDir)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Output directory (default from config)")
	generateCmd.Flags().StringSliceVar(&generateOnly, "only", nil, "Scenario ids to generate (comma-separated)")
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "Overwrite a site generated by a newer version")
	rootCmd.AddCommand(generateCmd)
}
