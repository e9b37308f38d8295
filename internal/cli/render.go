package cli

import (
	"fmt"

	"github.com/bannerlab/appdemos/internal/render"
	"github.com/spf13/cobra"
)

var renderFile string

var renderCmd = &cobra.Command{
	Use:   "render <id>",
	Short: "Render one scenario file to stdout",
	Long: `Render a scenario and print one of its files (index.html by default).

Examples:
  appdemos render web_broken
  appdemos render play_referrer --file manifest.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer()
		if err != nil {
			return err
		}
		page, err := r.Page(args[0])
		if err != nil {
			return err
		}
		f, ok := page.File(renderFile)
		if !ok {
			return fmt.Errorf("scenario %s has no %s (files: %v)", args[0], renderFile, pageFileNames(page))
		}
		_, err = cmd.OutOrStdout().Write(f.Data)
		return err
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderFile, "file", render.IndexFile, "File to print: index.html, manifest.json or sw.js")
	rootCmd.AddCommand(renderCmd)
}
