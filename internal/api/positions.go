package api

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/soyoon/agentgraph/internal/graph"
)

// scenarioParam recovers the free-text scenario from the URL path.
func scenarioParam(r *http.Request) string {
	raw := chi.URLParam(r, "scenario")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func (s *Server) loadPositions(w http.ResponseWriter, r *http.Request) {
	scenario := scenarioParam(r)
	saved := s.store.Load(r.Context(), scenario)
	if saved == nil {
		// A miss is normal: the client falls back to automatic layout.
		writeErrors(w, http.StatusNotFound, "no saved positions for scenario "+scenario)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) savePositions(w http.ResponseWriter, r *http.Request) {
	scenario := scenarioParam(r)
	var posMap map[string]graph.Position
	if err := json.NewDecoder(r.Body).Decode(&posMap); err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid position map")
		return
	}
	// Best-effort cache write; losing it only costs a re-layout.
	s.store.Save(r.Context(), scenario, posMap)
	w.WriteHeader(http.StatusNoContent)
}
