package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/soyoon/agentgraph/internal/export"
	"github.com/soyoon/agentgraph/internal/graph"
	"github.com/soyoon/agentgraph/internal/layout"
	"github.com/soyoon/agentgraph/internal/render"
)

// decodeGraph re-validates a client-posted graph body. Clients only ever
// hold graphs this service produced, but the body is still untrusted input.
func decodeGraph(w http.ResponseWriter, r *http.Request) (*graph.AgentGraph, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, "cannot read request body")
		return nil, false
	}
	var candidate any
	if err := json.Unmarshal(body, &candidate); err != nil {
		writeErrors(w, http.StatusBadRequest, "request body was not valid JSON")
		return nil, false
	}
	g, errs := graph.Validate(candidate)
	if len(errs) > 0 {
		writeErrors(w, http.StatusUnprocessableEntity, graph.ErrorStrings(errs)...)
		return nil, false
	}
	return g, true
}

// LayoutResponse carries computed or cached node coordinates.
type LayoutResponse struct {
	Scenario  string                    `json:"scenario"`
	Positions map[string]graph.Position `json:"positions"`
	FromCache bool                      `json:"fromCache"`
}

func (s *Server) layoutGraph(w http.ResponseWriter, r *http.Request) {
	g, ok := decodeGraph(w, r)
	if !ok {
		return
	}
	saved := s.store.Load(r.Context(), g.Scenario)
	writeJSON(w, http.StatusOK, LayoutResponse{
		Scenario:  g.Scenario,
		Positions: layout.Layout(g.Nodes, g.Edges, saved),
		FromCache: len(saved) > 0,
	})
}

func (s *Server) renderGraph(w http.ResponseWriter, r *http.Request) {
	g, ok := decodeGraph(w, r)
	if !ok {
		return
	}
	saved := s.store.Load(r.Context(), g.Scenario)
	diagram := render.Transform(g, layout.Layout(g.Nodes, g.Edges, saved))
	writeJSON(w, http.StatusOK, diagram)
}

func (s *Server) exportGraph(w http.ResponseWriter, r *http.Request) {
	g, ok := decodeGraph(w, r)
	if !ok {
		return
	}
	data, err := export.GraphJSON(g)
	if err != nil {
		writeErrors(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(g)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
