package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"path"
	"sort"
	texttemplate "text/template"

	"github.com/bannerlab/appdemos/internal/apps"
	"github.com/bannerlab/appdemos/internal/manifest"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// File names produced for a scenario.
const (
	IndexFile    = "index.html"
	ManifestFile = "manifest.json"
	WorkerFile   = "sw.js"
)

// DefaultTitle is used when no WithTitle option is given.
const DefaultTitle = "App banner demos"

// staticBase is where pages find the shared scripts, relative to /<id>/.
const staticBase = "../static/"

// File is one rendered output file.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Page is the rendered form of one scenario.
type Page struct {
	ID         string
	Descriptor apps.Descriptor
	Manifest   *manifest.WebAppManifest // nil when the scenario has no manifest
	Files      []File
}

// File returns the rendered file with the given name.
func (p *Page) File(name string) (File, bool) {
	for _, f := range p.Files {
		if f.Name == name {
			return f, true
		}
	}
	return File{}, false
}

// Renderer renders scenarios from the embedded templates. It is safe for
// concurrent use.
type Renderer struct {
	title     string
	page      *htmltemplate.Template
	listing   *htmltemplate.Template
	manifests map[string]*texttemplate.Template
	worker    []byte
	static    map[string][]byte
	printer   *message.Printer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTitle sets the site title shown on every page and used in manifest names.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		if title != "" {
			r.title = title
		}
	}
}

// New parses the embedded templates. Every scenario that asks for a manifest
// must have a manifest template.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		title:     DefaultTitle,
		manifests: make(map[string]*texttemplate.Template),
		static:    make(map[string][]byte),
		printer:   message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(r)
	}

	var err error
	r.page, err = htmltemplate.ParseFS(assets, pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	r.listing, err = htmltemplate.ParseFS(assets, listingTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing listing template: %w", err)
	}
	r.worker, err = fs.ReadFile(assets, serviceWorker)
	if err != nil {
		return nil, fmt.Errorf("reading service worker: %w", err)
	}

	funcs := texttemplate.FuncMap{"json": jsonString}
	for _, e := range apps.Entries() {
		if !e.ManifestJSON {
			continue
		}
		tmplPath := manifestTemplatePath(e.ID)
		src, err := fs.ReadFile(assets, tmplPath)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: manifest template: %w", e.ID, err)
		}
		t, err := texttemplate.New(path.Base(tmplPath)).Funcs(funcs).Parse(string(src))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", tmplPath, err)
		}
		r.manifests[e.ID] = t
	}

	entries, err := fs.ReadDir(assets, staticDir)
	if err != nil {
		return nil, fmt.Errorf("reading static assets: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(assets, path.Join(staticDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading static asset %s: %w", entry.Name(), err)
		}
		r.static[entry.Name()] = data
	}

	return r, nil
}

// Title returns the configured site title.
func (r *Renderer) Title() string { return r.title }

// pageData holds the variables available to page.html.tmpl.
type pageData struct {
	Title         string
	ID            string
	Description   string
	HasViewport   bool
	Viewport      string
	ManifestLink  bool
	IndexJS       bool
	StaticBase    string
	ReferrerLinks []manifest.RelatedApplication
}

// manifestData holds the variables available to manifest templates.
type manifestData struct {
	ID        string
	Name      string
	ShortName string
	Icon      string
}

// Page renders the scenario registered under id. Unknown ids fail with an
// error wrapping apps.ErrUnknownScenario.
func (r *Renderer) Page(id string) (*Page, error) {
	d, err := apps.Get(id)
	if err != nil {
		return nil, err
	}

	p := &Page{ID: id, Descriptor: d}
	data := pageData{
		Title:        r.title,
		ID:           id,
		Description:  d.Description,
		ManifestLink: d.ManifestJSON,
		IndexJS:      d.IndexJS,
		StaticBase:   staticBase,
	}
	data.Viewport, data.HasViewport = d.ViewportValue()

	var manifestFile *File
	if d.ManifestJSON {
		raw, m, err := r.renderManifest(id)
		if err != nil {
			return nil, err
		}
		p.Manifest = m
		manifestFile = &File{Name: ManifestFile, ContentType: contentType(ManifestFile), Data: raw}
		if d.Referrer {
			data.ReferrerLinks = m.StoreLinks()
		}
	}

	var buf bytes.Buffer
	if err := r.page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("scenario %s: executing page template: %w", id, err)
	}
	p.Files = append(p.Files, File{Name: IndexFile, ContentType: contentType(IndexFile), Data: buf.Bytes()})

	if manifestFile != nil {
		p.Files = append(p.Files, *manifestFile)
	}
	if d.IndexJS {
		p.Files = append(p.Files, File{Name: WorkerFile, ContentType: contentType(WorkerFile), Data: r.worker})
	}
	return p, nil
}

// renderManifest executes and validates the manifest template for id.
func (r *Renderer) renderManifest(id string) ([]byte, *manifest.WebAppManifest, error) {
	t, ok := r.manifests[id]
	if !ok {
		return nil, nil, fmt.Errorf("scenario %s: no manifest template", id)
	}

	var buf bytes.Buffer
	data := manifestData{
		ID:        id,
		Name:      r.title + ": " + id,
		ShortName: id,
		Icon:      staticBase + "icon.svg",
	}
	if err := t.Execute(&buf, data); err != nil {
		return nil, nil, fmt.Errorf("scenario %s: executing manifest template: %w", id, err)
	}

	result, err := manifest.Validate(buf.Bytes())
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %s: %w", id, err)
	}
	if err := result.Err(); err != nil {
		return nil, nil, fmt.Errorf("scenario %s: %w", id, err)
	}

	m, err := manifest.Parse(buf.Bytes())
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %s: %w", id, err)
	}
	return buf.Bytes(), m, nil
}

// listingEntry is one row of the listing page.
type listingEntry struct {
	ID           string
	Description  string
	ManifestJSON bool
	IndexJS      bool
	Viewport     string
	Referrer     bool
}

// Listing renders the index page. With no ids it lists every scenario in
// registry order; otherwise only the given ids, in the order given.
func (r *Renderer) Listing(ids ...string) ([]byte, error) {
	entries, err := listingEntries(ids)
	if err != nil {
		return nil, err
	}
	rows := make([]listingEntry, 0, len(entries))
	for _, e := range entries {
		v, _ := e.ViewportValue()
		rows = append(rows, listingEntry{
			ID:           e.ID,
			Description:  e.Description,
			ManifestJSON: e.ManifestJSON,
			IndexJS:      e.IndexJS,
			Viewport:     v,
			Referrer:     e.Referrer,
		})
	}

	data := struct {
		Title   string
		Summary string
		Entries []listingEntry
	}{
		Title:   r.title,
		Summary: r.printer.Sprintf("%d scenarios", len(rows)),
		Entries: rows,
	}

	var buf bytes.Buffer
	if err := r.listing.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing listing template: %w", err)
	}
	return buf.Bytes(), nil
}

func listingEntries(ids []string) ([]apps.Entry, error) {
	if len(ids) == 0 {
		return apps.Entries(), nil
	}
	entries := make([]apps.Entry, 0, len(ids))
	for _, id := range ids {
		d, err := apps.Get(id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, apps.Entry{ID: id, Descriptor: d})
	}
	return entries, nil
}

// Static returns a shared asset by file name.
func (r *Renderer) Static(name string) ([]byte, error) {
	data, ok := r.static[name]
	if !ok {
		return nil, fmt.Errorf("static asset %q: %w", name, fs.ErrNotExist)
	}
	return data, nil
}

// StaticNames returns the names of all shared assets, sorted.
func (r *Renderer) StaticNames() []string {
	names := make([]string, 0, len(r.static))
	for name := range r.static {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ContentType returns the MIME type served for a rendered or static file.
func ContentType(name string) string { return contentType(name) }

func contentType(name string) string {
	switch path.Ext(name) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".json":
		return "application/manifest+json"
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

func jsonString(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
