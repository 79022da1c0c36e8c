package risk

import (
	"testing"

	"github.com/calegray/facade/internal/model"
)

func TestCategorizeKeywords(t *testing.T) {
	c := New(nil)
	cases := []struct {
		desc string
		want model.RiskCategory
	}{
		{"Sprinkler system inoperable on floor 3", model.Fire},
		{"FACADE CRACKED AND LOOSE MASONRY", model.Structural},
		{"exposed wiring in hallway", model.Electrical},
		{"elevator stuck between floors", model.Mechanical},
		{"sewage backup in basement", model.Plumbing},
		{"no heat in apartment 4B", model.Housing},
		{"illegal conversion of cellar to SRO", model.Zoning},
		{"miscellaneous paperwork issue", model.Other},
		{"", model.Other},
	}
	for _, tc := range cases {
		if got := c.Categorize(tc.desc); got != tc.want {
			t.Errorf("Categorize(%q) = %s, want %s", tc.desc, got, tc.want)
		}
	}
}

func TestCategorizeSeverityPrecedence(t *testing.T) {
	c := New(nil)
	// Mentions both fire and electrical hazards; FIRE is more severe and
	// must win regardless of keyword table layout.
	got := c.Categorize("electrical wiring sparked a fire near the exit")
	if got != model.Fire {
		t.Fatalf("expected FIRE, got %s", got)
	}
}

func TestCategorizeTableOrderIndependence(t *testing.T) {
	// Two tables with identical content built in different insertion orders
	// must classify identically: matching walks CategoryOrder, not the map.
	a := Rules{
		model.Fire:       {"fire"},
		model.Electrical: {"wiring"},
	}
	b := Rules{
		model.Electrical: {"wiring"},
		model.Fire:       {"fire"},
	}
	desc := "fire caused by faulty wiring"
	if got, want := New(a).Categorize(desc), New(b).Categorize(desc); got != want {
		t.Fatalf("table order changed the result: %s vs %s", got, want)
	}
	if got := New(b).Categorize(desc); got != model.Fire {
		t.Fatalf("expected FIRE, got %s", got)
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	c := New(nil)
	desc := "smoke detector missing, also mold on ceiling"
	first := c.Categorize(desc)
	for i := 0; i < 100; i++ {
		if got := c.Categorize(desc); got != first {
			t.Fatalf("run %d: got %s, first run got %s", i, got, first)
		}
	}
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	c := New(nil)
	if got := c.Categorize("BOILER LEAKING"); got != model.Mechanical {
		t.Fatalf("expected MECHANICAL, got %s", got)
	}
}
