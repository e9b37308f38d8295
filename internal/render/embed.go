package render

import "embed"

//go:embed templates static
var assets embed.FS

const (
	pageTemplate    = "templates/page.html.tmpl"
	listingTemplate = "templates/listing.html.tmpl"
	serviceWorker   = "templates/sw.js"
	staticDir       = "static"
)

// manifestTemplatePath returns the embedded manifest template for a scenario.
func manifestTemplatePath(id string) string {
	return "templates/apps/" + id + "/manifest.json.tmpl"
}
