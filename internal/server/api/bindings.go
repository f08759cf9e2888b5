// Package api provides HTTP API handlers for the Mudra gesture pipeline.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/store"
)

// BindingsHandler handles HTTP requests for binding resources.
type BindingsHandler struct {
	store *store.Store
}

// NewBindingsHandler creates a new BindingsHandler with the given store.
func NewBindingsHandler(s *store.Store) *BindingsHandler {
	return &BindingsHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to
// appropriate methods.
func (h *BindingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/bindings or /api/bindings/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/bindings")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type bindingRequest struct {
	Label   string `json:"label"`
	Command string `json:"command"`
	Enabled bool   `json:"enabled"`
}

type bindingResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Command   string `json:"command"`
	Enabled   bool   `json:"enabled"`
	CreatedAt string `json:"created_at"`
}

type listBindingsResponse struct {
	Bindings []bindingResponse `json:"bindings"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toBindingResponse converts a store.Binding to a bindingResponse.
func toBindingResponse(b *store.Binding) bindingResponse {
	return bindingResponse{
		ID:        b.ID,
		Label:     b.Label,
		Command:   b.Command,
		Enabled:   b.Enabled,
		CreatedAt: b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// knownLabels are the labels the classifier can emit; bindings for
// anything else are configuration mistakes.
var knownLabels = map[string]bool{
	"calibrating": true,
	"no_hand":     true,
	"waving":      true,
	"rock":        true,
	"pointing":    true,
	"scissors":    true,
	"unknown":     true,
}

// list handles GET /api/bindings.
func (h *BindingsHandler) list(w http.ResponseWriter, r *http.Request) {
	bindings, err := h.store.Bindings().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list bindings")
		return
	}

	resp := listBindingsResponse{Bindings: make([]bindingResponse, 0, len(bindings))}
	for _, b := range bindings {
		resp.Bindings = append(resp.Bindings, toBindingResponse(b))
	}

	writeJSON(w, http.StatusOK, resp)
}

// create handles POST /api/bindings.
func (h *BindingsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req bindingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Label == "" || req.Command == "" {
		writeError(w, http.StatusBadRequest, "label and command are required")
		return
	}
	if !knownLabels[req.Label] {
		writeError(w, http.StatusBadRequest, "unknown label: "+req.Label)
		return
	}

	b := &store.Binding{
		ID:      uuid.NewString(),
		Label:   req.Label,
		Command: req.Command,
		Enabled: req.Enabled,
	}

	if err := h.store.Bindings().Create(b); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create binding")
		return
	}

	writeJSON(w, http.StatusCreated, toBindingResponse(b))
}

// get handles GET /api/bindings/{id}.
func (h *BindingsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	b, err := h.store.Bindings().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Binding not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get binding")
		return
	}

	writeJSON(w, http.StatusOK, toBindingResponse(b))
}

// update handles PUT /api/bindings/{id}.
func (h *BindingsHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var req bindingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Label != "" && !knownLabels[req.Label] {
		writeError(w, http.StatusBadRequest, "unknown label: "+req.Label)
		return
	}

	b, err := h.store.Bindings().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Binding not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get binding")
		return
	}

	if req.Label != "" {
		b.Label = req.Label
	}
	if req.Command != "" {
		b.Command = req.Command
	}
	b.Enabled = req.Enabled

	if err := h.store.Bindings().Update(b); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update binding")
		return
	}

	writeJSON(w, http.StatusOK, toBindingResponse(b))
}

// delete handles DELETE /api/bindings/{id}.
func (h *BindingsHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Bindings().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Binding not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete binding")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
