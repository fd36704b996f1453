package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jfmartel/boampwatch/internal/config"
	"github.com/jfmartel/boampwatch/internal/jobs"
	"github.com/jfmartel/boampwatch/internal/records"
	"github.com/jfmartel/boampwatch/internal/server/endpoints"
)

// newTestServer builds a server whose catalog points at the given URL and
// returns it with an httptest front for its handler.
func newTestServer(t *testing.T, catalogURL string) (*Server, *httptest.Server) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf("catalog:\n  url: %s\n  market_type: Travaux\n  page_size: 100\n  max_records: 1000\n", catalogURL)
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	mgr, err := config.NewManager(cfgPath)
	if err != nil {
		t.Fatalf("config manager: %v", err)
	}

	s, err := New(Config{ConfigManager: mgr})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	front := httptest.NewServer(s.Handler())
	t.Cleanup(front.Close)
	return s, front
}

func catalogServer(t *testing.T, recs []records.Record) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		out := recs
		if r.URL.Query().Get("offset") != "0" {
			out = nil
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"results": out})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, body any, out any) int {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHealthEndpoint(t *testing.T) {
	catalog := catalogServer(t, nil)
	_, front := newTestServer(t, catalog.URL)

	var resp endpoints.HealthResponse
	if status := getJSON(t, front.URL+"/health", &resp); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if resp.Status != "ok" {
		t.Errorf("status field = %q, want ok", resp.Status)
	}
}

func TestKeywordsEndpoint(t *testing.T) {
	catalog := catalogServer(t, nil)
	_, front := newTestServer(t, catalog.URL)

	var resp endpoints.KeywordsResponse
	if status := getJSON(t, front.URL+"/api/keywords", &resp); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(resp.Keywords) == 0 {
		t.Error("expected a non-empty predefined keyword list")
	}
}

func TestExtractRequestValidation(t *testing.T) {
	catalog := catalogServer(t, nil)
	_, front := newTestServer(t, catalog.URL)

	tests := []struct {
		name string
		body any
	}{
		{"missing departments", map[string]any{"target_date": "2024-03-01", "keywords": []string{"serrurerie"}}},
		{"bad date format", map[string]any{"target_date": "01/03/2024", "keywords": []string{"serrurerie"}, "departments": []string{"75"}}},
		{"no keywords", map[string]any{"target_date": "2024-03-01", "departments": []string{"75"}}},
		{"unknown field", map[string]any{"target_date": "2024-03-01", "keywords": []string{"x"}, "departments": []string{"75"}, "bogus": true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp endpoints.ErrorResponse
			if status := postJSON(t, front.URL+"/api/extract", tt.body, &resp); status != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", status)
			}
			if resp.Error == "" {
				t.Error("expected an error message")
			}
		})
	}
}

func TestExtractJobLifecycle(t *testing.T) {
	catalog := catalogServer(t, []records.Record{
		{"idweb": "24-1", "objet": "Travaux de serrurerie", "dateparution": "2024-03-01", "code_departement": "69"},
	})
	_, front := newTestServer(t, catalog.URL)

	var submitted endpoints.ExtractResponse
	body := map[string]any{
		"target_date": "2024-03-01",
		"keywords":    []string{"serrurerie"},
		"departments": []string{"75"},
	}
	if status := postJSON(t, front.URL+"/api/extract", body, &submitted); status != http.StatusAccepted {
		t.Fatalf("submit status = %d, want 202", status)
	}
	if !strings.HasPrefix(submitted.JobID, "extract_") {
		t.Fatalf("unexpected job id %q", submitted.JobID)
	}

	// The only matching record is in department 69, so the job completes
	// without entering the document-processing stage.
	var progress struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	deadline := time.Now().Add(5 * time.Second)
	for {
		if status := getJSON(t, front.URL+"/api/jobs/"+submitted.JobID, &progress); status != http.StatusOK {
			t.Fatalf("progress status = %d, want 200", status)
		}
		if progress.Status == "completed" || progress.Status == "error" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("job stuck in status %q", progress.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}
	if progress.Status != "completed" {
		t.Fatalf("job status = %q, want completed", progress.Status)
	}
	if !strings.Contains(progress.Message, "No records found for selected departments") {
		t.Errorf("unexpected message %q", progress.Message)
	}

	var summary endpoints.SummaryResponse
	if status := getJSON(t, front.URL+"/api/jobs/"+submitted.JobID+"/summary", &summary); status != http.StatusOK {
		t.Fatalf("summary status = %d, want 200", status)
	}
	if summary.Count != 0 {
		t.Errorf("summary count = %d, want 0", summary.Count)
	}
}

func TestJobNotFound(t *testing.T) {
	catalog := catalogServer(t, nil)
	_, front := newTestServer(t, catalog.URL)

	paths := []string{
		"/api/jobs/extract_0_deadbeef",
		"/api/jobs/extract_0_deadbeef/results",
		"/api/jobs/extract_0_deadbeef/summary",
		"/api/jobs/extract_0_deadbeef/download/results",
		"/api/jobs/extract_0_deadbeef/download/summary",
	}
	for _, path := range paths {
		if status := getJSON(t, front.URL+path, nil); status != http.StatusNotFound {
			t.Errorf("%s status = %d, want 404", path, status)
		}
	}
}

func TestResultsConflictWhileProcessing(t *testing.T) {
	catalog := catalogServer(t, nil)
	srv, front := newTestServer(t, catalog.URL)

	srv.JobStore().Put(&jobs.Job{ID: "extract_1_cafebabe", Status: jobs.StatusProcessing})

	paths := []string{
		"/api/jobs/extract_1_cafebabe/results",
		"/api/jobs/extract_1_cafebabe/summary",
		"/api/jobs/extract_1_cafebabe/download/results",
		"/api/jobs/extract_1_cafebabe/download/summary",
	}
	for _, path := range paths {
		if status := getJSON(t, front.URL+path, nil); status != http.StatusConflict {
			t.Errorf("%s status = %d, want 409", path, status)
		}
	}
}

func TestExtractLinkEndpoint(t *testing.T) {
	catalog := catalogServer(t, nil)
	_, front := newTestServer(t, catalog.URL)

	text := "Documents de marché disponibles sur\nhttps://www.achatpublic.com/sdm/ent/gen/ent_detail.do?PCSLID=CSL_2024_x\n"
	var resp endpoints.ExtractLinkResponse
	if status := postJSON(t, front.URL+"/api/extract-link", map[string]any{"text": text}, &resp); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(resp.Links) == 0 || !strings.Contains(resp.PrimaryLink, "achatpublic.com") {
		t.Errorf("unexpected links %v", resp.Links)
	}

	if status := postJSON(t, front.URL+"/api/extract-link", map[string]any{"text": ""}, nil); status != http.StatusBadRequest {
		t.Errorf("empty text status = %d, want 400", status)
	}
}
