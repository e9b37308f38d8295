package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/bannerlab/appdemos/internal/apps"
	"github.com/bannerlab/appdemos/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(opts...)
	require.NoError(t, err)
	return r
}

func fileNames(p *Page) []string {
	var names []string
	for _, f := range p.Files {
		names = append(names, f.Name)
	}
	return names
}

func TestPage_AllScenariosRender(t *testing.T) {
	r := newRenderer(t)
	for _, id := range apps.IDs() {
		t.Run(id, func(t *testing.T) {
			p, err := r.Page(id)
			require.NoError(t, err)
			d, err := apps.Get(id)
			require.NoError(t, err)

			want := []string{IndexFile}
			if d.ManifestJSON {
				want = append(want, ManifestFile)
			}
			if d.IndexJS {
				want = append(want, WorkerFile)
			}
			assert.Equal(t, want, fileNames(p))

			index, ok := p.File(IndexFile)
			require.True(t, ok)
			html := string(index.Data)
			assert.Equal(t, d.ManifestJSON, strings.Contains(html, `<link rel="manifest" href="manifest.json">`), "manifest link")
			assert.Equal(t, d.IndexJS, strings.Contains(html, `<script src="../static/index.js"></script>`), "index script")
			assert.Equal(t, d.IndexJS, strings.Contains(html, `<script src="../static/logging.js"></script>`), "logging script")
			_, hasViewport := d.ViewportValue()
			assert.Equal(t, hasViewport, strings.Contains(html, `name="viewport"`), "viewport tag")
			assert.Equal(t, d.Referrer, strings.Contains(html, `referrerpolicy="unsafe-url"`), "referrer markup")
			assert.Contains(t, html, d.Description)
		})
	}
}

func TestPage_ViewportVerbatim(t *testing.T) {
	r := newRenderer(t)

	p, err := r.Page("web_broken")
	require.NoError(t, err)
	index, _ := p.File(IndexFile)
	assert.Contains(t, string(index.Data),
		`<meta name="viewport" content="minimum-scale=0.6, maximum-scale=5.0, user-scalable=fixed, INITIAL-SCALE=1.0, width=device-width">`)

	p, err = r.Page("web")
	require.NoError(t, err)
	index, _ = p.File(IndexFile)
	assert.Contains(t, string(index.Data), `<meta name="viewport" content="`+apps.DefaultViewport+`">`)
}

func TestPage_ReferrerLinks(t *testing.T) {
	r := newRenderer(t)

	tests := []struct {
		id   string
		host string
	}{
		{"play_referrer", "https://play.google.com/store/apps/details?id=com.example.bannerdemo&amp;referrer="},
		{"play_non_google_link_referrer", "https://bannerdemo.example.com/get?id=com.example.bannerdemo&amp;referrer="},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p, err := r.Page(tt.id)
			require.NoError(t, err)
			require.NotNil(t, p.Manifest)
			assert.True(t, p.Manifest.HasPlatform(manifest.PlatformPlay))
			index, _ := p.File(IndexFile)
			assert.Contains(t, string(index.Data), `<a href="`+tt.host)
		})
	}
}

func TestPage_ManifestContents(t *testing.T) {
	r := newRenderer(t, WithTitle("Banner lab"))

	tests := []struct {
		id        string
		prefer    bool
		platforms []string
	}{
		{"ios_and_play", true, []string{manifest.PlatformPlay, manifest.PlatformITunes}},
		{"ios_and_web", true, []string{manifest.PlatformITunes}},
		{"play", true, []string{manifest.PlatformPlay}},
		{"web", false, nil},
		{"web_and_ios", false, []string{manifest.PlatformITunes}},
		{"web_and_play", false, []string{manifest.PlatformPlay}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p, err := r.Page(tt.id)
			require.NoError(t, err)
			require.NotNil(t, p.Manifest)
			assert.Equal(t, "Banner lab: "+tt.id, p.Manifest.Name)
			assert.Equal(t, tt.prefer, p.Manifest.PreferRelatedApplications)
			var platforms []string
			for _, app := range p.Manifest.RelatedApplications {
				platforms = append(platforms, app.Platform)
			}
			assert.Equal(t, tt.platforms, platforms)

			f, ok := p.File(ManifestFile)
			require.True(t, ok)
			assert.Equal(t, "application/manifest+json", f.ContentType)
			result, err := manifest.Validate(f.Data)
			require.NoError(t, err)
			assert.True(t, result.Valid, "issues: %v", result.Issues)
		})
	}
}

func TestPage_NoManifest(t *testing.T) {
	r := newRenderer(t)
	p, err := r.Page("none")
	require.NoError(t, err)
	assert.Nil(t, p.Manifest)
	_, ok := p.File(ManifestFile)
	assert.False(t, ok)
}

func TestPage_Unknown(t *testing.T) {
	r := newRenderer(t)
	_, err := r.Page("nonexistent_scenario")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apps.ErrUnknownScenario))
}

func TestListing(t *testing.T) {
	r := newRenderer(t, WithTitle("Banner lab"))
	data, err := r.Listing()
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "<title>Banner lab</title>")
	assert.Contains(t, html, "15 scenarios")

	last := -1
	for _, id := range apps.IDs() {
		pos := strings.Index(html, `<tr id="`+id+`">`)
		require.GreaterOrEqual(t, pos, 0, "missing row for %s", id)
		assert.Greater(t, pos, last, "row %s out of order", id)
		last = pos
	}
	assert.Contains(t, html, "<code>"+apps.DefaultViewport+"</code>")
}

func TestListing_Subset(t *testing.T) {
	r := newRenderer(t)
	data, err := r.Listing("none", "web")
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "2 scenarios")
	assert.Contains(t, html, `<tr id="none">`)
	assert.Contains(t, html, `<tr id="web">`)
	assert.NotContains(t, html, `<tr id="ios">`)
	assert.NotContains(t, html, `href="web_broken/"`)

	_, err = r.Listing("web", "nonexistent_scenario")
	assert.ErrorIs(t, err, apps.ErrUnknownScenario)
}

func TestStatic_LicenseNotice(t *testing.T) {
	r := newRenderer(t)
	for _, name := range []string{"index.js", "logging.js"} {
		t.Run(name, func(t *testing.T) {
			data, err := r.Static(name)
			require.NoError(t, err)
			head := string(data)
			require.True(t, strings.HasPrefix(head, "// Copyright 2017 Google Inc.\n"), "missing copyright line")
			assert.Contains(t, head, `Licensed under the Apache License, Version 2.0`)
			assert.Contains(t, head, "Modified for appdemos")
		})
	}
}

func TestStatic(t *testing.T) {
	r := newRenderer(t)
	assert.Equal(t, []string{"icon.svg", "index.js", "logging.js"}, r.StaticNames())

	data, err := r.Static("index.js")
	require.NoError(t, err)
	assert.Contains(t, string(data), "beforeinstallprompt")

	_, err = r.Static("missing.js")
	assert.Error(t, err)
}

func TestWithTitle_EmptyKeepsDefault(t *testing.T) {
	r := newRenderer(t, WithTitle(""))
	assert.Equal(t, DefaultTitle, r.Title())
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/html; charset=utf-8", ContentType("index.html"))
	assert.Equal(t, "text/javascript; charset=utf-8", ContentType("sw.js"))
	assert.Equal(t, "image/svg+xml", ContentType("icon.svg"))
	assert.Equal(t, "application/octet-stream", ContentType("blob"))
}
