package plan

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/calegray/facade/internal/model"
)

var t0 = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func open(key, desc string, kind model.RecordKind, issued time.Time) model.NormalizedRecord {
	return model.NormalizedRecord{
		PropertyID:   "p1",
		Jurisdiction: model.NYC,
		Dataset:      model.HPDViolations,
		Kind:         kind,
		NaturalKey:   key,
		Status:       model.StatusOpen,
		Description:  desc,
		IssuedAt:     issued,
	}
}

func TestGenerateOrdering(t *testing.T) {
	g := New(Tables{}, nil)
	records := []model.NormalizedRecord{
		open("housing-new", "mold in kitchen", model.KindViolation, t0.AddDate(0, 6, 0)),
		open("fire-1", "blocked fire exit", model.KindViolation, t0.AddDate(0, 1, 0)),
		open("housing-old", "rodent droppings", model.KindViolation, t0),
		open("elec-1", "exposed wiring", model.KindViolation, t0.AddDate(0, 3, 0)),
	}

	items := g.Generate(records)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}

	wantOrder := []string{"fire-1", "elec-1", "housing-old", "housing-new"}
	for i, want := range wantOrder {
		if items[i].NaturalKey != want {
			t.Fatalf("position %d: got %s, want %s", i, items[i].NaturalKey, want)
		}
	}
}

func TestGenerateSkipsNonOpen(t *testing.T) {
	g := New(Tables{}, nil)
	records := []model.NormalizedRecord{
		{Kind: model.KindViolation, NaturalKey: "r1", Status: model.StatusResolved, Description: "fire"},
		{Kind: model.KindViolation, NaturalKey: "u1", Status: model.StatusUnknown, Description: "fire"},
	}
	if items := g.Generate(records); len(items) != 0 {
		t.Fatalf("expected no items for non-open records, got %d", len(items))
	}
}

func TestGeneratePriorities(t *testing.T) {
	cases := []struct {
		cat  model.RiskCategory
		want model.Priority
	}{
		{model.Fire, model.PriorityCritical},
		{model.Structural, model.PriorityCritical},
		{model.Electrical, model.PriorityHigh},
		{model.Mechanical, model.PriorityMedium},
		{model.Plumbing, model.PriorityMedium},
		{model.Housing, model.PriorityLow},
		{model.Zoning, model.PriorityLow},
		{model.Other, model.PriorityLow},
	}
	for _, tc := range cases {
		if got := PriorityFor(tc.cat); got != tc.want {
			t.Errorf("PriorityFor(%s) = %s, want %s", tc.cat, got, tc.want)
		}
	}
}

func TestGenerateCostsAndTitle(t *testing.T) {
	g := New(Tables{}, nil)
	items := g.Generate([]model.NormalizedRecord{
		open("v1", "sprinkler head painted over", model.KindViolation, t0),
	})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]
	want := DefaultTables().Costs[model.Fire]
	if item.CostMin != want.Min || item.CostMax != want.Max {
		t.Fatalf("cost range %d-%d, want %d-%d", item.CostMin, item.CostMax, want.Min, want.Max)
	}
	if item.Title == "" {
		t.Fatal("expected a title")
	}
}

func TestGenerateTitleTruncatesOnRuneBoundary(t *testing.T) {
	g := New(Tables{}, nil)
	desc := "fire " + strings.Repeat("é", 100)
	items := g.Generate([]model.NormalizedRecord{
		open("v1", desc, model.KindViolation, t0),
	})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	title := items[0].Title
	if !utf8.ValidString(title) {
		t.Fatalf("truncated title is not valid UTF-8: %q", title)
	}
	if !strings.HasSuffix(title, "...") {
		t.Fatalf("expected truncated title to end in ellipsis: %q", title)
	}
	if got := utf8.RuneCountInString(title); got > len("[FIRE] ")+80 {
		t.Fatalf("title too long: %d runes", got)
	}
}

func TestGenerateUndatedSortAfterDated(t *testing.T) {
	g := New(Tables{}, nil)
	items := g.Generate([]model.NormalizedRecord{
		open("undated", "mold", model.KindViolation, time.Time{}),
		open("dated", "mold", model.KindViolation, t0),
	})
	if items[0].NaturalKey != "dated" || items[1].NaturalKey != "undated" {
		t.Fatalf("expected dated before undated, got %s, %s", items[0].NaturalKey, items[1].NaturalKey)
	}
}

func TestGenerateInspectionsMapToMechanical(t *testing.T) {
	g := New(Tables{}, nil)
	items := g.Generate([]model.NormalizedRecord{
		open("i1", "", model.KindInspection, t0),
	})
	if len(items) != 1 || items[0].Category != model.Mechanical {
		t.Fatalf("expected MECHANICAL inspection item, got %+v", items)
	}
	if items[0].Priority != model.PriorityMedium {
		t.Fatalf("expected MEDIUM priority, got %s", items[0].Priority)
	}
}
