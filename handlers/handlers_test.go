package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"lifemoves/config"
)

func newTestAPI(t *testing.T) (*memStore, *gin.Engine) {
	t.Helper()
	store, r, _ := newTestAPIWithConfig(t, config.Config{
		AppName:      "Life Moves API",
		DatabaseName: "lifemoves",
		JWTSecret:    "test-secret",
	})
	return store, r
}

func newTestAPIWithConfig(t *testing.T, cfg config.Config) (*memStore, *gin.Engine, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := newMemStore()
	h := New(store, cfg)
	r := gin.New()
	h.Register(r)
	return store, r, h
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRequestWithAuth(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response object: %v (body %q)", err, w.Body.String())
	}
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response list: %v (body %q)", err, w.Body.String())
	}
	return out
}

func TestRootLiveness(t *testing.T) {
	_, r := newTestAPI(t)

	w := doRequest(t, r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeObject(t, w)
	if body["name"] != "Life Moves API" || body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestDiagnosticEndpoint(t *testing.T) {
	store, r := newTestAPI(t)

	w := doRequest(t, r, http.MethodGet, "/test", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeObject(t, w)
	if body["connection_status"] != "connected" {
		t.Fatalf("connection_status = %v, want connected", body["connection_status"])
	}

	store.unavailable = true
	w = doRequest(t, r, http.MethodGet, "/test", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("degraded status = %d, want 200", w.Code)
	}
	body = decodeObject(t, w)
	if body["connection_status"] != "not connected" {
		t.Fatalf("degraded connection_status = %v, want not connected", body["connection_status"])
	}
}

func TestStoreUnavailableSurfacesServerError(t *testing.T) {
	store, r := newTestAPI(t)
	store.unavailable = true

	w := doRequest(t, r, http.MethodPost, "/tasks", map[string]any{
		"user_id":   "u1",
		"week":      "2026-W01",
		"task_type": "movement",
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	w = doRequest(t, r, http.MethodGet, "/tasks?user_id=u1", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("list status = %d, want 500", w.Code)
	}
}
