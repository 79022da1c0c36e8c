package facade

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/calegray/facade/internal/model"
	"github.com/calegray/facade/internal/store"
)

// fakeOpenData serves canned Socrata responses for every NYC dataset: an
// active fire-code violation, an open heat complaint from HPD, an
// unsatisfactory elevator filing, and clean boiler, 311, and electrical
// results.
func fakeOpenData(t *testing.T) *httptest.Server {
	t.Helper()
	bodies := map[string]string{
		"/resource/3h2n-5cm9.json": `[{
			"isn_dob_bis_viol": "dob-1",
			"violation_category": "V-DOB VIOLATION - ACTIVE",
			"issue_date": "20240105",
			"description": "blocked fire exit in stairwell"
		}]`,
		"/resource/wvxf-dwi5.json": `[{
			"violationid": "hpd-1",
			"violationstatus": "Open",
			"novissueddate": "2024-02-10T00:00:00.000",
			"novdescription": "no heat supplied to dwelling unit"
		}]`,
		"/resource/e5aq-a4j2.json": `[{
			"filing_number": "elev-1",
			"filing_status": "UNSATISFACTORY",
			"device_number": "1P1234",
			"status_date": "2024-03-01"
		}]`,
		"/resource/52dp-yji6.json": `[{
			"tracking_number": "boil-1",
			"defects_exist": "No",
			"inspection_date": "2024-01-20"
		}]`,
		"/resource/erm2-nwe9.json": `[{
			"unique_key": "311-1",
			"status": "Closed",
			"complaint_type": "HEAT/HOT WATER",
			"descriptor": "ENTIRE BUILDING"
		}]`,
		"/resource/dm9a-ab7w.json": `[]`,
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path %q", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, body)
	}))
}

func newTestService(t *testing.T, endpoint string) *Service {
	t.Helper()
	st, err := store.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	svc, err := New(
		WithStore(st),
		WithEndpoint(endpoint),
		WithTimeouts(5*time.Second, 30*time.Second),
	)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

// The valid BIN and BBL keep the sync off the geocoding service.
func gold100() model.Property {
	return model.Property{
		ID:           "nyc-gold-100",
		Jurisdiction: model.NYC,
		Address:      "100 Gold Street",
		BuildingID:   "1001234",
		ParcelID:     "1000160001",
		Borough:      "Manhattan",
	}
}

func TestServiceEndToEnd(t *testing.T) {
	srv := fakeOpenData(t)
	defer srv.Close()
	svc := newTestService(t, srv.URL)
	ctx := context.Background()

	if err := svc.AddProperty(ctx, gold100()); err != nil {
		t.Fatalf("add property: %v", err)
	}

	report, err := svc.SyncProperty(ctx, "nyc-gold-100")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(report.Adapters) != 6 {
		t.Fatalf("expected all 6 NYC adapters to run, got %d", len(report.Adapters))
	}
	for _, a := range report.Adapters {
		if a.Status != model.FetchOK {
			t.Fatalf("adapter %s: expected OK, got %s (%s)", a.Dataset, a.Status, a.Error)
		}
	}
	if report.RecordsCreated != 5 {
		t.Fatalf("expected 5 records created, got %d", report.RecordsCreated)
	}
	if report.Degraded() {
		t.Fatal("clean sync must not be degraded")
	}

	// Open: fire violation (-25), housing violation (-5), elevator
	// equipment issue (-10). Boiler and 311 are resolved, electrical empty.
	summary, err := svc.ComplianceSummary(ctx, "nyc-gold-100")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Score != 60 || summary.Tier != model.TierHigh {
		t.Fatalf("expected 60/HIGH, got %d/%s", summary.Score, summary.Tier)
	}
	if summary.TotalRecords != 5 || summary.OpenRecords != 3 {
		t.Fatalf("expected 5 total / 3 open, got %d / %d", summary.TotalRecords, summary.OpenRecords)
	}
	if summary.ByCategory[model.Fire] != 1 || summary.ByCategory[model.Housing] != 1 {
		t.Fatalf("unexpected category counts: %v", summary.ByCategory)
	}
	if summary.EquipmentIssues != 1 {
		t.Fatalf("expected 1 equipment issue, got %d", summary.EquipmentIssues)
	}

	plan, err := svc.ActionPlan(ctx, "nyc-gold-100")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan) != 3 {
		t.Fatalf("expected 3 action items, got %d", len(plan))
	}
	wantOrder := []model.RiskCategory{model.Fire, model.Mechanical, model.Housing}
	for i, want := range wantOrder {
		if plan[i].Category != want {
			t.Fatalf("item %d: expected %s, got %s", i, want, plan[i].Category)
		}
	}
	if plan[0].Priority != model.PriorityCritical || plan[0].NaturalKey != "dob-1" {
		t.Fatalf("fire item should lead the plan: %+v", plan[0])
	}
}

func TestServiceResyncIsIdempotent(t *testing.T) {
	srv := fakeOpenData(t)
	defer srv.Close()
	svc := newTestService(t, srv.URL)
	ctx := context.Background()

	if err := svc.AddProperty(ctx, gold100()); err != nil {
		t.Fatalf("add property: %v", err)
	}
	first, err := svc.SyncProperty(ctx, "nyc-gold-100")
	if err != nil {
		t.Fatalf("first sync: %v", err)
	}
	second, err := svc.SyncProperty(ctx, "nyc-gold-100")
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if second.RecordsCreated != 0 || second.RecordsUpdated != first.RecordsCreated {
		t.Fatalf("re-sync should update in place: created %d, updated %d",
			second.RecordsCreated, second.RecordsUpdated)
	}
	if first.Summary.Score != second.Summary.Score {
		t.Fatalf("score drifted without new data: %d -> %d", first.Summary.Score, second.Summary.Score)
	}
}

func TestServiceAddPropertyValidation(t *testing.T) {
	svc := newTestService(t, "http://unused.invalid")
	ctx := context.Background()

	if err := svc.AddProperty(ctx, model.Property{ID: "p1"}); err == nil {
		t.Fatal("expected error for missing address")
	}
	if err := svc.AddProperty(ctx, model.Property{Address: "1 Main St"}); err == nil {
		t.Fatal("expected error for missing ID")
	}
}

func TestServiceUnknownProperty(t *testing.T) {
	svc := newTestService(t, "http://unused.invalid")
	ctx := context.Background()

	if _, err := svc.SyncProperty(ctx, "ghost"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("sync: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.ComplianceSummary(ctx, "ghost"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("summary: expected ErrNotFound, got %v", err)
	}
}
