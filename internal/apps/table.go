package apps

func viewport(s string) *string { return &s }

var defaultViewport = viewport(DefaultViewport)

var table = []Entry{
	{ID: "ios_and_play", Descriptor: Descriptor{
		Description:  "Site with a related iOS and play app in the manifest.",
		ManifestJSON: true,
	}},
	{ID: "ios_and_web", Descriptor: Descriptor{
		Description:  "Site which is a valid web app, but has a preferred iOS app in its manifest.",
		IndexJS:      true,
		ManifestJSON: true,
	}},
	{ID: "ios", Descriptor: Descriptor{
		Description:  "Site with a related iOS app in the manifest.",
		ManifestJSON: true,
	}},
	{ID: "none", Descriptor: Descriptor{
		Description: "Site with no manifest.",
		IndexJS:     true,
	}},
	{ID: "play_and_ios", Descriptor: Descriptor{
		Description:  "Site with a related play app, and iOS app, in its manifest.",
		ManifestJSON: true,
	}},
	{ID: "play_and_web", Descriptor: Descriptor{
		Description:  "Site which is a valid web app, but has a preferred play app in its manifest.",
		IndexJS:      true,
		ManifestJSON: true,
	}},
	{ID: "play", Descriptor: Descriptor{
		Description:  "Site with a related play app in the manifest.",
		ManifestJSON: true,
	}},
	{ID: "play_non_google_link_referrer", Descriptor: Descriptor{
		Description:  "Site with a related play app (non-Play-Store referrer) in the manifest.",
		ManifestJSON: true,
		Referrer:     true,
	}},
	{ID: "play_referrer", Descriptor: Descriptor{
		Description:  "Site with a related play app (Play Store referrer) in the manifest.",
		ManifestJSON: true,
		Referrer:     true,
	}},
	{ID: "web", Descriptor: Descriptor{
		Description:  "Site which is a valid web app.",
		IndexJS:      true,
		ManifestJSON: true,
		Viewport:     defaultViewport,
	}},
	{ID: "web_and_ios", Descriptor: Descriptor{
		Description:  "Site which is a valid web app, and also with a non-preferred iOS app in its manifest.",
		IndexJS:      true,
		ManifestJSON: true,
		Viewport:     defaultViewport,
	}},
	{ID: "web_and_play", Descriptor: Descriptor{
		Description:  "Site which is a valid web, and also with a non-preferred play app in its manifest.",
		IndexJS:      true,
		ManifestJSON: true,
		Viewport:     defaultViewport,
	}},
	{ID: "web_broken", Descriptor: Descriptor{
		Description:  "Site which is a broken web app.",
		IndexJS:      true,
		ManifestJSON: true,
		// Out-of-range scales and mixed case are intentional.
		Viewport: viewport("minimum-scale=0.6, maximum-scale=5.0, " +
			"user-scalable=fixed, INITIAL-SCALE=1.0, " +
			"width=device-width"),
	}},
	{ID: "web_no_meta_viewport", Descriptor: Descriptor{
		Description:  "Site which is missing a viewport.",
		IndexJS:      true,
		ManifestJSON: true,
	}},
	{ID: "web_redispatch", Descriptor: Descriptor{
		Description:  "Site which is a valid web app.",
		IndexJS:      true,
		ManifestJSON: true,
		Viewport:     defaultViewport,
	}},
}
