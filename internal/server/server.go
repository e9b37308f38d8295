package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bannerlab/appdemos/internal/apps"
	"github.com/bannerlab/appdemos/internal/render"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

const (
	pageCacheExpiration = 10 * time.Minute
	pageCacheCleanup    = 30 * time.Minute
	shutdownTimeout     = 5 * time.Second
)

// Server serves the demo site.
type Server struct {
	addr     string
	renderer *render.Renderer
	pages    *gocache.Cache
	server   *http.Server
}

// New creates a Server that listens on addr.
func New(r *render.Renderer, addr string) *Server {
	return &Server{
		addr:     addr,
		renderer: r,
		pages:    gocache.New(pageCacheExpiration, pageCacheCleanup),
	}
}

// Handler returns the HTTP handler with every route registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/scenarios", s.handleScenarios)
	mux.HandleFunc("GET /api/scenarios/{id}", s.handleScenario)
	mux.HandleFunc("GET /static/{name}", s.handleStatic)
	mux.HandleFunc("GET /{$}", s.handleListing)
	mux.HandleFunc("GET /{id}", s.handleRedirect)
	mux.HandleFunc("GET /{id}/{file...}", s.handlePage)
	return withRequestLog(mux)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", s.addr).Msgf("serving demos on http://%s/", s.addr)
	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// page returns the rendered scenario, rendering it on a cache miss.
func (s *Server) page(id string) (*render.Page, error) {
	if cached, ok := s.pages.Get(id); ok {
		if p, ok := cached.(*render.Page); ok {
			return p, nil
		}
	}
	p, err := s.renderer.Page(id)
	if err != nil {
		return nil, err
	}
	s.pages.SetDefault(id, p)
	return p, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "scenarios": apps.Len()})
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apps.Entries())
}

func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	d, err := apps.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apps.Entry{ID: id, Descriptor: d})
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	data, err := s.renderer.Static(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	writeBody(w, render.ContentType(name), data)
}

func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	data, err := s.renderer.Listing()
	if err != nil {
		writeError(w, err)
		return
	}
	writeBody(w, render.ContentType(render.IndexFile), data)
}

func (s *Server) handleRedirect(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !apps.Has(id) {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/"+id+"/", http.StatusMovedPermanently)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	name := r.PathValue("file")
	if name == "" {
		name = render.IndexFile
	}

	p, err := s.page(id)
	if err != nil {
		writeError(w, err)
		return
	}
	f, ok := p.File(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeBody(w, f.ContentType, f.Data)
}

// writeError maps unknown scenarios to 404 and everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, apps.ErrUnknownScenario) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	log.Error().Err(err).Msg("request failed")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func writeBody(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("encoding JSON response")
	}
}
