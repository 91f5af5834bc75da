package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/revlytics/lead-insights-service/internal/enrich"
	"github.com/revlytics/lead-insights-service/internal/httpserver"
	"github.com/revlytics/lead-insights-service/internal/models"
)

////////////////////////////////////////////////////////////////////////////////
// FAKES
//
// The handlers only see the Store and Enricher interfaces, so the tests run
// the real router against in-memory implementations.
////////////////////////////////////////////////////////////////////////////////

// fakeStore applies the same filter semantics as the SQL store: empty
// industry and zero size impose no constraint.
type fakeStore struct {
	leads  []models.Lead
	events []models.Event

	listLeadsErr error
	nextEventID  int64
}

func (f *fakeStore) ListLeads(_ context.Context, flt models.LeadFilter) ([]models.Lead, error) {
	if f.listLeadsErr != nil {
		return nil, f.listLeadsErr
	}
	out := []models.Lead{}
	for _, l := range f.leads {
		if flt.Industry != "" && l.Industry != flt.Industry {
			continue
		}
		if flt.MinSize > 0 && l.Size < flt.MinSize {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeStore) InsertEvent(_ context.Context, e models.Event) (int64, error) {
	f.nextEventID++
	e.ID = f.nextEventID
	f.events = append(f.events, e)
	return e.ID, nil
}

func (f *fakeStore) ListEvents(_ context.Context) ([]models.Event, error) {
	return append([]models.Event{}, f.events...), nil
}

func (f *fakeStore) Ping(_ context.Context) error { return nil }

// fakeEnricher classifies by the fixed size thresholds, or fails for ids in
// failFor to exercise per-record isolation.
type fakeEnricher struct {
	failFor map[string]bool // industry -> fail
	calls   int
}

func (f *fakeEnricher) Enrich(_ context.Context, industry string, size int64) (enrich.Result, error) {
	f.calls++
	if f.failFor[industry] {
		return enrich.Result{}, fmt.Errorf("model unavailable")
	}
	quality := "Low"
	switch {
	case size > 100:
		quality = "High"
	case size >= 30:
		quality = "Medium"
	}
	return enrich.Result{
		Quality: quality,
		Summary: fmt.Sprintf("A %s company with %d employees.", industry, size),
	}, nil
}

////////////////////////////////////////////////////////////////////////////////
// HTTP HELPERS
////////////////////////////////////////////////////////////////////////////////

func newRouter(st *fakeStore, en *fakeEnricher) http.Handler {
	return httpserver.NewRouter(st, en)
}

// doGet performs a GET against the router and returns status + body.
func doGet(t *testing.T, h http.Handler, path string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

// doPost performs a JSON POST against the router.
func doPost(t *testing.T, h http.Handler, path string, payload any) (int, []byte) {
	t.Helper()

	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

// decodeList decodes a JSON array of objects, keeping keys loose so tests can
// assert on key presence, not just values.
func decodeList(t *testing.T, b []byte) []map[string]any {
	t.Helper()

	var out []map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("invalid JSON array: %v\n%s", err, b)
	}
	return out
}

// sampleLeads mirrors the seed file's shape.
func sampleLeads() []models.Lead {
	return []models.Lead{
		{ID: 1, Name: "Alicia Mendez", Company: "Brightcore Systems", Industry: "Technology", Size: 240, Source: "Organic",
			CreatedAt: time.Date(2024, 5, 2, 9, 14, 33, 0, time.UTC)},
		{ID: 2, Name: "Tom Okafor", Company: "Halvorsen Manufacturing", Industry: "Manufacturing", Size: 100, Source: "PPC",
			CreatedAt: time.Date(2024, 5, 4, 16, 42, 10, 0, time.UTC)},
		{ID: 3, Name: "Priya Raman", Company: "Cedarline Health", Industry: "Healthcare", Size: 99, Source: "Referral",
			CreatedAt: time.Date(2024, 5, 5, 11, 5, 47, 0, time.UTC)},
		{ID: 4, Name: "Marcus Feld", Company: "Northgate Capital", Industry: "Technology", Size: 18, Source: "Email",
			CreatedAt: time.Date(2024, 5, 7, 8, 30, 5, 0, time.UTC)},
	}
}
