package cli

import (
	"fmt"

	"github.com/bannerlab/appdemos/internal/apps"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a scenario descriptor",
	Long:  `Print the descriptor registered for a scenario as YAML (or JSON with --json).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := apps.Get(args[0])
		if err != nil {
			return err
		}
		entry := apps.Entry{ID: args[0], Descriptor: d}

		if showJSON {
			return printJSON(cmd, entry)
		}
		out, err := yaml.Marshal(entry)
		if err != nil {
			return fmt.Errorf("marshaling descriptor: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(showCmd)
}
