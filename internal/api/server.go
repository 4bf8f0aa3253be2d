// Package api exposes graph generation, layout, and position persistence
// over HTTP. Handlers re-validate any graph a client posts back, so the
// layout and render paths only ever see verified values.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/singleflight"

	"github.com/soyoon/agentgraph/internal/generate"
	"github.com/soyoon/agentgraph/internal/positions"
)

type Server struct {
	generator *generate.Generator
	store     positions.Store
	inflight  singleflight.Group
}

// NewServer wires the API. generator may be nil when no provider is
// configured; the generate endpoint then reports 503 and the sample and
// layout endpoints keep working.
func NewServer(generator *generate.Generator, store positions.Store) *Server {
	return &Server{generator: generator, store: store}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", s.generateGraph)
		r.Route("/samples", func(r chi.Router) {
			r.Get("/", s.listSamples)
			r.Get("/{name}", s.getSample)
		})
		r.Post("/layout", s.layoutGraph)
		r.Post("/render", s.renderGraph)
		r.Post("/export", s.exportGraph)
		r.Route("/positions", func(r chi.Router) {
			r.Get("/{scenario}", s.loadPositions)
			r.Put("/{scenario}", s.savePositions)
		})
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorBody mirrors generate.Result so invalid input and invalid model
// output read the same way to clients.
type errorBody struct {
	Errors []string `json:"errors"`
}

func writeErrors(w http.ResponseWriter, status int, errs ...string) {
	writeJSON(w, status, errorBody{Errors: errs})
}
