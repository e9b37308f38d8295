package site

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bannerlab/appdemos/internal/apps"
	"github.com/bannerlab/appdemos/internal/manifest"
	"github.com/bannerlab/appdemos/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.New()
	require.NoError(t, err)
	return r
}

func TestGenerate_AllScenarios(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site")
	result, err := Generate(context.Background(), newRenderer(t), out, Options{Version: "1.0.0"})
	require.NoError(t, err)

	assert.Equal(t, apps.IDs(), result.Scenarios)
	assert.FileExists(t, filepath.Join(out, "index.html"))
	assert.FileExists(t, filepath.Join(out, "static", "index.js"))
	assert.FileExists(t, filepath.Join(out, "static", "logging.js"))

	for _, e := range apps.Entries() {
		assert.FileExists(t, filepath.Join(out, e.ID, "index.html"))
		manifestPath := filepath.Join(out, e.ID, "manifest.json")
		if e.ManifestJSON {
			res, err := manifest.ValidateFile(manifestPath)
			require.NoError(t, err)
			assert.True(t, res.Valid, "%s: %v", e.ID, res.Issues)
		} else {
			assert.NoFileExists(t, manifestPath)
		}
	}

	stamp, err := LoadStamp(out)
	require.NoError(t, err)
	require.NotNil(t, stamp)
	assert.Equal(t, "1.0.0", stamp.Version)
	assert.Equal(t, apps.IDs(), stamp.Scenarios)
}

func TestGenerate_Only(t *testing.T) {
	out := t.TempDir()
	result, err := Generate(context.Background(), newRenderer(t), out, Options{
		Version: "1.0.0",
		Only:    []string{"web_broken", "ios"},
	})
	require.NoError(t, err)

	// Registry order, not request order.
	assert.Equal(t, []string{"ios", "web_broken"}, result.Scenarios)
	assert.NoDirExists(t, filepath.Join(out, "web"))

	listing, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(listing), `href="ios/"`)
	assert.Contains(t, string(listing), `href="web_broken/"`)
	assert.NotContains(t, string(listing), `href="web/"`)
	assert.NotContains(t, string(listing), `href="none/"`)
}

func TestGenerate_OnlyUnknown(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site")
	_, err := Generate(context.Background(), newRenderer(t), out, Options{Only: []string{"nonexistent_scenario"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apps.ErrUnknownScenario))
	assert.NoDirExists(t, out)
}

func TestGenerate_ForeignDirectory(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(out, "notes.txt"), []byte("keep"), 0644))

	_, err := Generate(context.Background(), newRenderer(t), out, Options{Version: "1.0.0"})
	assert.True(t, errors.Is(err, ErrNotEmpty))
}

func TestGenerate_Regenerate(t *testing.T) {
	out := t.TempDir()
	r := newRenderer(t)
	_, err := Generate(context.Background(), r, out, Options{Version: "1.0.0"})
	require.NoError(t, err)

	_, err = Generate(context.Background(), r, out, Options{Version: "1.1.0"})
	require.NoError(t, err)
}

func TestGenerate_NewerStamp(t *testing.T) {
	out := t.TempDir()
	r := newRenderer(t)
	_, err := Generate(context.Background(), r, out, Options{Version: "2.0.0"})
	require.NoError(t, err)

	_, err = Generate(context.Background(), r, out, Options{Version: "1.0.0"})
	assert.True(t, errors.Is(err, ErrNewerSite))

	_, err = Generate(context.Background(), r, out, Options{Version: "1.0.0", Force: true})
	assert.NoError(t, err)
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, newRenderer(t), t.TempDir(), Options{Version: "1.0.0"})
	assert.True(t, errors.Is(err, context.Canceled))
}
