package api

import (
	"net/http"
	"strconv"

	"github.com/ayusman/mudra/internal/store"
)

// defaultEventLimit caps how many recent events a plain list returns.
const defaultEventLimit = 100

// EventsHandler handles HTTP requests for gesture event queries.
type EventsHandler struct {
	store *store.Store
}

// NewEventsHandler creates a new EventsHandler with the given store.
func NewEventsHandler(s *store.Store) *EventsHandler {
	return &EventsHandler{store: s}
}

type eventResponse struct {
	ID          int64  `json:"id"`
	SessionID   string `json:"session_id"`
	Frame       int    `json:"frame"`
	Label       string `json:"label"`
	FingerCount int    `json:"finger_count"`
	CreatedAt   string `json:"created_at"`
}

type listEventsResponse struct {
	Events []eventResponse `json:"events"`
}

func toEventResponse(e *store.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		SessionID:   e.SessionID,
		Frame:       e.Frame,
		Label:       e.Label,
		FingerCount: e.FingerCount,
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ServeHTTP handles GET /api/events with optional session and limit
// query parameters.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var (
		events []*store.Event
		err    error
	)

	if sessionID := r.URL.Query().Get("session"); sessionID != "" {
		events, err = h.store.Events().ListBySession(sessionID)
	} else {
		limit := defaultEventLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			parsed, perr := strconv.Atoi(v)
			if perr != nil || parsed <= 0 {
				writeError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = parsed
		}
		events, err = h.store.Events().ListRecent(limit)
	}

	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	resp := listEventsResponse{Events: make([]eventResponse, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, toEventResponse(e))
	}

	writeJSON(w, http.StatusOK, resp)
}
