package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soyoon/agentgraph/internal/samples"
)

func (s *Server) listSamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"samples": samples.Names()})
}

func (s *Server) getSample(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	g, err := samples.Load(name)
	if err != nil {
		writeErrors(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, g)
}
