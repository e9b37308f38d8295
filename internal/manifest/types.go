package manifest

// Platforms accepted in related_applications.
const (
	PlatformPlay   = "play"
	PlatformITunes = "itunes"
	PlatformWebapp = "webapp"
)

// WebAppManifest is the subset of the W3C web app manifest used by the demos.
type WebAppManifest struct {
	Name                      string               `json:"name"`
	ShortName                 string               `json:"short_name,omitempty"`
	StartURL                  string               `json:"start_url"`
	Scope                     string               `json:"scope,omitempty"`
	Display                   string               `json:"display,omitempty"`
	BackgroundColor           string               `json:"background_color,omitempty"`
	ThemeColor                string               `json:"theme_color,omitempty"`
	Icons                     []Icon               `json:"icons,omitempty"`
	RelatedApplications       []RelatedApplication `json:"related_applications,omitempty"`
	PreferRelatedApplications bool                 `json:"prefer_related_applications,omitempty"`
}

// Icon is one entry of the icons member.
type Icon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes,omitempty"`
	Type  string `json:"type,omitempty"`
}

// RelatedApplication is a native app that the site declares as equivalent.
type RelatedApplication struct {
	Platform string `json:"platform"`
	URL      string `json:"url,omitempty"`
	ID       string `json:"id,omitempty"`
}

// StoreLinks returns the related applications that carry a URL, in manifest
// order.
func (m *WebAppManifest) StoreLinks() []RelatedApplication {
	var links []RelatedApplication
	for _, app := range m.RelatedApplications {
		if app.URL != "" {
			links = append(links, app)
		}
	}
	return links
}

// HasPlatform reports whether any related application targets platform.
func (m *WebAppManifest) HasPlatform(platform string) bool {
	for _, app := range m.RelatedApplications {
		if app.Platform == platform {
			return true
		}
	}
	return false
}
