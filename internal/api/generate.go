package api

import (
	"encoding/json"
	"net/http"

	"github.com/soyoon/agentgraph/internal/generate"
)

// GenerateRequest is the JSON body for graph generation from free text.
type GenerateRequest struct {
	Description string `json:"description"`
}

func (s *Server) generateGraph(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Description == "" {
		writeErrors(w, http.StatusBadRequest, "description is required")
		return
	}
	if s.generator == nil {
		writeErrors(w, http.StatusServiceUnavailable, "generator not configured (no providers available)")
		return
	}

	// Concurrent requests for the same description share one provider call;
	// a superseding request is a different description and flies separately.
	v, err, _ := s.inflight.Do(req.Description, func() (any, error) {
		return s.generator.Generate(r.Context(), req.Description)
	})
	if err != nil {
		writeErrors(w, http.StatusBadGateway, err.Error())
		return
	}
	result := v.(generate.Result)

	// Validation problems ride in the body, not the status: the client keeps
	// its prior graph and shows the error list inline.
	writeJSON(w, http.StatusOK, result)
}
