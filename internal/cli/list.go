package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bannerlab/appdemos/internal/apps"
	"github.com/spf13/cobra"
)

var (
	listManifest bool
	listIndexJS  bool
	listViewport bool
	listReferrer bool
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List demo scenarios",
	Long: `List the registered demo scenarios in registry order.

The query matches against scenario ids and descriptions (case-insensitive
substring). Flag filters keep only scenarios that include the fragment.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listManifest, "manifest", false, "Only scenarios with a web app manifest")
	listCmd.Flags().BoolVar(&listIndexJS, "index-js", false, "Only scenarios with the index script")
	listCmd.Flags().BoolVar(&listViewport, "viewport", false, "Only scenarios with a viewport meta tag")
	listCmd.Flags().BoolVar(&listReferrer, "referrer", false, "Only scenarios with referrer markup")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listFilter holds the AND-combined list filters.
type listFilter struct {
	query    string
	manifest bool
	indexJS  bool
	viewport bool
	referrer bool
}

func runList(cmd *cobra.Command, args []string) error {
	f := listFilter{
		manifest: listManifest,
		indexJS:  listIndexJS,
		viewport: listViewport,
		referrer: listReferrer,
	}
	if len(args) > 0 {
		f.query = args[0]
	}

	var entries []apps.Entry
	for _, e := range apps.Entries() {
		if f.matches(e) {
			entries = append(entries, e)
		}
	}

	if len(entries) == 0 {
		msg := "No scenarios found"
		if f.query != "" {
			msg += fmt.Sprintf(" matching %q", f.query)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}

	if listJSON {
		return printJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

// matches returns true if the entry passes every non-empty filter.
func (f listFilter) matches(e apps.Entry) bool {
	if f.manifest && !e.ManifestJSON {
		return false
	}
	if f.indexJS && !e.IndexJS {
		return false
	}
	if f.viewport && e.Viewport == nil {
		return false
	}
	if f.referrer && !e.Referrer {
		return false
	}

	if f.query != "" {
		q := strings.ToLower(f.query)
		if !strings.Contains(strings.ToLower(e.ID), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) {
			return false
		}
	}
	return true
}

func printListTable(cmd *cobra.Command, entries []apps.Entry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tFRAGMENTS\tDESCRIPTION")
	for _, e := range entries {
		desc := e.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, fragments(e.Descriptor), desc)
	}
	return w.Flush()
}

// fragments summarises which optional fragments a scenario includes.
func fragments(d apps.Descriptor) string {
	var parts []string
	if d.ManifestJSON {
		parts = append(parts, "manifest")
	}
	if d.IndexJS {
		parts = append(parts, "index.js")
	}
	if d.Viewport != nil {
		parts = append(parts, "viewport")
	}
	if d.Referrer {
		parts = append(parts, "referrer")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
