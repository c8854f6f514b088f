package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Aouidate/CartoonBuilder/pkg/session"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := DefaultConfig()
	srv := New(cfg, session.NewMemoryStore(), log.New(io.Discard))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func createSession(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/sessions", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create session status = %d", resp.StatusCode)
	}
	var out struct {
		ID        string    `json:"id"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.ID == "" {
		t.Fatal("empty session id")
	}
	return out.ID
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestBuildScenario(t *testing.T) {
	ts := newTestServer(t)
	id := createSession(t, ts)
	base := ts.URL + "/api/sessions/" + id

	// Attach a stock sugar going up.
	resp := doJSON(t, http.MethodPost, base+"/attachments", map[string]string{
		"point": "Zero", "component": "XYL", "direction": "Up", "category": "Sugar",
	})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("attach status = %d", resp.StatusCode)
	}

	// Register a custom component and a new point, then attach there.
	resp = doJSON(t, http.MethodPost, base+"/components", map[string]string{
		"name": "MAL", "shape": "circle", "color": "#4682B4", "label": "Mal", "category": "Sugar",
	})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("add component status = %d", resp.StatusCode)
	}
	resp = doJSON(t, http.MethodPost, base+"/attachment-points", map[string]any{
		"name": "C3", "x": 0.0, "y": -1.0,
	})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("add point status = %d", resp.StatusCode)
	}
	resp = doJSON(t, http.MethodPost, base+"/attachments", map[string]string{
		"point": "C3", "component": "MAL", "direction": "Down", "category": "Sugar",
	})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("attach custom status = %d", resp.StatusCode)
	}

	// Switch scaffolds.
	resp = doJSON(t, http.MethodPut, base+"/scaffold", map[string]string{"name": "BA"})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("set scaffold status = %d", resp.StatusCode)
	}

	// The document snapshot reflects every mutation.
	resp = doJSON(t, http.MethodGet, base+"/", nil)
	var doc struct {
		Molecule struct {
			Scaffold struct {
				Label string `json:"label"`
			} `json:"scaffold"`
			Sugars []struct {
				Point string `json:"point"`
			} `json:"attached_sugars"`
		} `json:"molecule"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatal(err)
	}
	if doc.Molecule.Scaffold.Label != "BA" {
		t.Errorf("scaffold = %q, want BA", doc.Molecule.Scaffold.Label)
	}
	if len(doc.Molecule.Sugars) != 2 {
		t.Errorf("sugar groups = %d, want 2", len(doc.Molecule.Sugars))
	}
}

func TestImageEndpoint(t *testing.T) {
	ts := newTestServer(t)
	id := createSession(t, ts)
	base := ts.URL + "/api/sessions/" + id

	resp, err := http.Get(base + "/image.png")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("image status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if _, err := png.Decode(resp.Body); err != nil {
		t.Errorf("body is not a valid PNG: %v", err)
	}

	// Download variant carries the fixed filename.
	resp2, err := http.Get(base + "/image.png?download=1")
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if cd := resp2.Header.Get("Content-Disposition"); !strings.Contains(cd, `filename="Saponin.png"`) {
		t.Errorf("Content-Disposition = %q, want Saponin.png attachment", cd)
	}
}

func TestEnumerations(t *testing.T) {
	ts := newTestServer(t)
	id := createSession(t, ts)
	base := ts.URL + "/api/sessions/" + id

	resp := doJSON(t, http.MethodGet, base+"/components", nil)
	var comps struct {
		Scaffolds    []string `json:"scaffolds"`
		Sugars       []string `json:"sugars"`
		Substituents []string `json:"substituents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&comps); err != nil {
		t.Fatal(err)
	}
	if len(comps.Scaffolds) != 8 || len(comps.Sugars) != 6 || len(comps.Substituents) != 4 {
		t.Errorf("catalog sizes = %d/%d/%d, want 8/6/4",
			len(comps.Scaffolds), len(comps.Sugars), len(comps.Substituents))
	}

	resp = doJSON(t, http.MethodGet, base+"/components?category=Sugar", nil)
	var sugars struct {
		Names []string `json:"names"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sugars); err != nil {
		t.Fatal(err)
	}
	if len(sugars.Names) != 6 {
		t.Errorf("filtered sugars = %v, want 6 entries", sugars.Names)
	}

	resp = doJSON(t, http.MethodGet, base+"/attachment-points", nil)
	var points struct {
		Names []string `json:"names"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&points); err != nil {
		t.Fatal(err)
	}
	if len(points.Names) != 5 || points.Names[0] != "Zero" {
		t.Errorf("points = %v, want the 5 stock points starting with Zero", points.Names)
	}
}

func TestErrorMapping(t *testing.T) {
	ts := newTestServer(t)
	id := createSession(t, ts)
	base := ts.URL + "/api/sessions/" + id

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{
			name: "invalid shape", method: http.MethodPost, path: "/components",
			body:       map[string]string{"name": "T", "shape": "triangle", "color": "red", "label": "T", "category": "Sugar"},
			wantStatus: http.StatusBadRequest, wantCode: "INVALID_SHAPE",
		},
		{
			name: "invalid color", method: http.MethodPost, path: "/components",
			body:       map[string]string{"name": "T", "shape": "circle", "color": "blurple", "label": "T", "category": "Sugar"},
			wantStatus: http.StatusBadRequest, wantCode: "INVALID_COLOR",
		},
		{
			name: "invalid category", method: http.MethodPost, path: "/components",
			body:       map[string]string{"name": "T", "shape": "circle", "color": "red", "label": "T", "category": "Linker"},
			wantStatus: http.StatusBadRequest, wantCode: "INVALID_CATEGORY",
		},
		{
			name: "duplicate point", method: http.MethodPost, path: "/attachment-points",
			body:       map[string]any{"name": "Zero", "x": 0.0, "y": 0.0},
			wantStatus: http.StatusBadRequest, wantCode: "DUPLICATE_ATTACHMENT_POINT",
		},
		{
			name: "unknown point", method: http.MethodPost, path: "/attachments",
			body:       map[string]string{"point": "Nowhere", "component": "XYL", "direction": "Up", "category": "Sugar"},
			wantStatus: http.StatusNotFound, wantCode: "UNKNOWN_ATTACHMENT_POINT",
		},
		{
			name: "unknown component", method: http.MethodPost, path: "/attachments",
			body:       map[string]string{"point": "Zero", "component": "NOPE", "direction": "Up", "category": "Sugar"},
			wantStatus: http.StatusNotFound, wantCode: "UNKNOWN_COMPONENT",
		},
		{
			name: "unknown scaffold", method: http.MethodPut, path: "/scaffold",
			body:       map[string]string{"name": "NOPE"},
			wantStatus: http.StatusNotFound, wantCode: "UNKNOWN_COMPONENT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, tt.method, base+tt.path, tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var out struct {
				Code string `json:"code"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				t.Fatal(err)
			}
			if out.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", out.Code, tt.wantCode)
			}
		})
	}
}

func TestUnrecognizedDirectionAccepted(t *testing.T) {
	// Unknown directions are not an error anywhere in the stack; they
	// default to Right at render time.
	ts := newTestServer(t)
	id := createSession(t, ts)
	base := ts.URL + "/api/sessions/" + id

	resp := doJSON(t, http.MethodPost, base+"/attachments", map[string]string{
		"point": "Zero", "component": "XYL", "direction": "Sideways", "category": "Sugar",
	})
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("attach with unrecognized direction status = %d, want 204", resp.StatusCode)
	}
}

func TestMissingSession(t *testing.T) {
	ts := newTestServer(t)
	resp := doJSON(t, http.MethodGet, ts.URL+"/api/sessions/nope/", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	ts := newTestServer(t)
	a := createSession(t, ts)
	b := createSession(t, ts)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+a+"/attachments", map[string]string{
		"point": "Zero", "component": "XYL", "direction": "Up", "category": "Sugar",
	})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("attach status = %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+b+"/", nil)
	var doc struct {
		Molecule struct {
			Sugars []any `json:"attached_sugars"`
		} `json:"molecule"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Molecule.Sugars) != 0 {
		t.Error("mutation in session A leaked into session B")
	}
}
