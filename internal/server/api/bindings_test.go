package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayusman/mudra/internal/store"
)

func newTestHandler(t *testing.T) (*BindingsHandler, *store.Store) {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return NewBindingsHandler(s), s
}

func postBinding(t *testing.T, h *BindingsHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/bindings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestBindings_CreateAndGet(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postBinding(t, h, `{"label":"rock","command":"echo rock","enabled":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body)
	}

	var created bindingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("create response has no ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bindings/"+created.ID, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got bindingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if got.Label != "rock" || got.Command != "echo rock" || !got.Enabled {
		t.Errorf("get = %+v", got)
	}
}

func TestBindings_CreateValidation(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid JSON", `{`},
		{"missing label", `{"command":"echo"}`},
		{"missing command", `{"label":"rock"}`},
		{"unknown label", `{"label":"thumbs_up","command":"echo"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := postBinding(t, h, tt.body); rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestBindings_List(t *testing.T) {
	h, _ := newTestHandler(t)

	postBinding(t, h, `{"label":"rock","command":"echo 1","enabled":true}`)
	postBinding(t, h, `{"label":"waving","command":"echo 2","enabled":false}`)

	req := httptest.NewRequest(http.MethodGet, "/api/bindings", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body listBindingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(body.Bindings) != 2 {
		t.Errorf("bindings = %d, want 2", len(body.Bindings))
	}
}

func TestBindings_UpdateAndDelete(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postBinding(t, h, `{"label":"rock","command":"echo 1","enabled":true}`)
	var created bindingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/bindings/"+created.ID,
		strings.NewReader(`{"command":"echo 2","enabled":false}`))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}

	var updated bindingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if updated.Command != "echo 2" || updated.Enabled {
		t.Errorf("update = %+v, want command %q disabled", updated, "echo 2")
	}
	if updated.Label != "rock" {
		t.Errorf("update cleared the label: %+v", updated)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/bindings/"+created.ID, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/bindings/"+created.ID, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestBindings_MethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/bindings", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
