package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bannerlab/appdemos/internal/apps"
	"github.com/bannerlab/appdemos/internal/config"
	"github.com/bannerlab/appdemos/internal/render"
	"github.com/bannerlab/appdemos/internal/site"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the demo renderer",
	Long:  `Check the config file, render every scenario and inspect the output directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		checkConfig(out)
		failed := checkScenarios(out)
		checkOutputDir(out, config.OutputDir())
		if failed > 0 {
			return fmt.Errorf("%d scenario(s) failed to render", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func checkConfig(out io.Writer) {
	fmt.Fprintln(out, "Config check:")
	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "  [INFO] %s not found, using defaults\n", path)
	} else {
		fmt.Fprintf(out, "  [ OK ] %s\n", path)
	}
	for _, key := range config.Keys {
		fmt.Fprintf(out, "  [INFO] %s = %s\n", key, config.Get(key))
	}
}

func checkScenarios(out io.Writer) int {
	fmt.Fprintln(out, "Scenario check:")
	r, err := newRenderer()
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] templates: %v\n", err)
		return apps.Len()
	}
	fmt.Fprintf(out, "  [INFO] site title: %s\n", r.Title())

	failed := 0
	for _, id := range apps.IDs() {
		page, err := r.Page(id)
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %s: %v\n", id, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "  [ OK ] %s (%s)\n", id, strings.Join(pageFileNames(page), ", "))
	}
	return failed
}

func checkOutputDir(out io.Writer, dir string) {
	fmt.Fprintln(out, "Output check:")
	stamp, err := site.LoadStamp(dir)
	switch {
	case err != nil:
		fmt.Fprintf(out, "  [WARN] %s: %v\n", dir, err)
	case stamp == nil:
		fmt.Fprintf(out, "  [INFO] %s has not been generated yet\n", dir)
	default:
		fmt.Fprintf(out, "  [ OK ] %s generated by %s at %s (%d scenarios)\n",
			dir, stamp.Version, stamp.GeneratedAt.Format("2006-01-02 15:04"), len(stamp.Scenarios))
	}
}

func pageFileNames(p *render.Page) []string {
	names := make([]string, 0, len(p.Files))
	for _, f := range p.Files {
		names = append(names, f.Name)
	}
	return names
}
