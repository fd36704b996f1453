package boamp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jfmartel/boampwatch/internal/records"
)

func pageHandler(pages map[string][]records.Record) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset := r.URL.Query().Get("offset")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"results": pages[offset]})
	}
}

func TestFetchAllForDate(t *testing.T) {
	pages := map[string][]records.Record{
		"0": {
			{"idweb": "A1", "dateparution": "2024-03-02"},
			{"idweb": "A2", "dateparution": "2024-03-01"},
		},
		"2": {
			{"idweb": "A3", "dateparution": "2024-03-01"},
			{"idweb": "A4", "dateparution": "2024-02-28"},
		},
		"4": {
			{"idweb": "A5", "dateparution": "2024-02-27"},
		},
	}
	srv := httptest.NewServer(pageHandler(pages))
	defer srv.Close()

	client := NewClient(Config{URL: srv.URL, MarketType: "Travaux", PageSize: 2, MaxRecords: 100})
	got := client.FetchAllForDate(context.Background(), "2024-03-01")

	// A2 and A3 match; fetch stops after page 2 whose last record predates
	// the target, so page 4 is never requested.
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].ID() != "A2" || got[1].ID() != "A3" {
		t.Errorf("got ids %s, %s; want A2, A3", got[0].ID(), got[1].ID())
	}
}

func TestFetchStopsOnEmptyPage(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	}))
	defer srv.Close()

	client := NewClient(Config{URL: srv.URL, PageSize: 100})
	got := client.FetchAllForDate(context.Background(), "2024-03-01")

	if len(got) != 0 {
		t.Errorf("got %d records, want 0", len(got))
	}
	if calls != 1 {
		t.Errorf("made %d calls, want 1", calls)
	}
}

func TestFetchTruncatesOnServerError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"results": []records.Record{
			{"idweb": "A1", "dateparution": "2024-03-01"},
		}})
	}))
	defer srv.Close()

	client := NewClient(Config{URL: srv.URL, PageSize: 1, MaxRecords: 100})
	got := client.FetchAllForDate(context.Background(), "2024-03-01")

	// Failure on the second page returns what was accumulated, no error.
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
}

func TestFetchHonorsMaxRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offset := r.URL.Query().Get("offset")
		recs := []records.Record{
			{"idweb": "X" + offset, "dateparution": "2024-03-01"},
			{"idweb": "Y" + offset, "dateparution": "2024-03-01"},
		}
		json.NewEncoder(w).Encode(map[string]any{"results": recs})
	}))
	defer srv.Close()

	client := NewClient(Config{URL: srv.URL, PageSize: 2, MaxRecords: 4})
	got := client.FetchAllForDate(context.Background(), "2024-03-01")

	if len(got) != 4 {
		t.Errorf("got %d records, want 4", len(got))
	}
}

func TestFetchSendsExpectedQuery(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		fmt.Fprint(w, `{"results": []}`)
	}))
	defer srv.Close()

	client := NewClient(Config{URL: srv.URL, MarketType: "Travaux", PageSize: 100})
	client.FetchAllForDate(context.Background(), "2024-03-01")

	for _, want := range []string{"order_by=", "type_marche=Travaux", "limit=100", "offset=0"} {
		if !strings.Contains(query, want) {
			t.Errorf("query %q missing %q", query, want)
		}
	}
}
