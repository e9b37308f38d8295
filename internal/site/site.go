package site

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bannerlab/appdemos/internal/apps"
	"github.com/bannerlab/appdemos/internal/render"
	"github.com/rs/zerolog/log"
)

// ErrNotEmpty is returned when the output directory holds files that were not
// written by the generator.
var ErrNotEmpty = errors.New("output directory is not empty")

// ErrNewerSite is returned when the output directory was generated by a newer
// version and Force is not set.
var ErrNewerSite = errors.New("output directory was generated by a newer version")

// Options controls a Generate run.
type Options struct {
	Version string   // generator version recorded in the stamp ("dev" skips the version guard)
	Only    []string // scenario ids to write; empty means all
	Force   bool     // overwrite sites stamped by a newer version
}

// Result holds the outcome of a Generate run.
type Result struct {
	OutputDir string
	Scenarios []string
	Files     []string // paths relative to OutputDir
}

// Generate renders the selected scenarios into outDir.
func Generate(ctx context.Context, r *render.Renderer, outDir string, opts Options) (*Result, error) {
	ids, err := selectScenarios(opts.Only)
	if err != nil {
		return nil, err
	}
	if err := checkOutputDir(outDir, opts); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{OutputDir: outDir}

	for _, name := range r.StaticNames() {
		data, err := r.Static(name)
		if err != nil {
			return nil, err
		}
		rel := filepath.Join("static", name)
		if err := writeFile(outDir, rel, data); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, rel)
	}

	// The listing links only the scenarios written in this run.
	listing, err := r.Listing(ids...)
	if err != nil {
		return nil, err
	}
	if err := writeFile(outDir, render.IndexFile, listing); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, render.IndexFile)

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := r.Page(id)
		if err != nil {
			return nil, err
		}
		for _, f := range page.Files {
			rel := filepath.Join(id, f.Name)
			if err := writeFile(outDir, rel, f.Data); err != nil {
				return nil, err
			}
			result.Files = append(result.Files, rel)
		}
		result.Scenarios = append(result.Scenarios, id)
		log.Debug().Str("scenario", id).Int("files", len(page.Files)).Msg("rendered scenario")
	}

	stamp := &Stamp{
		Version:     opts.Version,
		GeneratedAt: time.Now().UTC(),
		Scenarios:   result.Scenarios,
	}
	if err := writeStamp(outDir, stamp); err != nil {
		return nil, err
	}

	log.Info().Str("dir", outDir).Int("scenarios", len(result.Scenarios)).Msg("site generated")
	return result, nil
}

// selectScenarios resolves the requested ids, keeping registry order.
// Unknown ids fail before anything is written.
func selectScenarios(only []string) ([]string, error) {
	if len(only) == 0 {
		return apps.IDs(), nil
	}

	want := make(map[string]bool, len(only))
	for _, id := range only {
		if !apps.Has(id) {
			return nil, fmt.Errorf("%w: %q", apps.ErrUnknownScenario, id)
		}
		want[id] = true
	}

	var ids []string
	for _, id := range apps.IDs() {
		if want[id] {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// checkOutputDir refuses directories with foreign content or a stamp from a
// newer generator.
func checkOutputDir(outDir string, opts Options) error {
	entries, err := os.ReadDir(outDir)
	if errors.Is(err, os.ErrNotExist) || (err == nil && len(entries) == 0) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading output directory: %w", err)
	}

	stamp, err := LoadStamp(outDir)
	if err != nil {
		return err
	}
	if stamp == nil {
		return fmt.Errorf("%w: %s", ErrNotEmpty, outDir)
	}

	if opts.Force || opts.Version == "dev" || stamp.Version == "dev" {
		return nil
	}
	cmp, err := CompareVersions(opts.Version, stamp.Version)
	if err != nil {
		log.Warn().Err(err).Str("dir", outDir).Msg("cannot compare build stamp versions")
		return nil
	}
	if cmp < 0 {
		return fmt.Errorf("%w (%s > %s); use --force to overwrite", ErrNewerSite, stamp.Version, opts.Version)
	}
	return nil
}

func writeFile(outDir, rel string, data []byte) error {
	path := filepath.Join(outDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}
