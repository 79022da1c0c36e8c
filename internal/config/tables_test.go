package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/calegray/facade/internal/model"
	"github.com/calegray/facade/internal/plan"
)

func TestLoadTablesEmptyPathReturnsDefaults(t *testing.T) {
	tables, err := LoadTables("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tables.Weights.Category[model.Fire] != 25 {
		t.Fatalf("expected default fire weight 25, got %d", tables.Weights.Category[model.Fire])
	}
	if len(tables.Keywords[model.Fire]) == 0 {
		t.Fatal("expected default fire keywords")
	}
}

func TestLoadTablesOverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	body := `
weights:
  category:
    FIRE: 40
  equipment: 20
keywords:
  ZONING: ["variance", "setback"]
costs:
  FIRE: {min: 5000, max: 50000}
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tables, err := LoadTables(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if tables.Weights.Category[model.Fire] != 40 {
		t.Fatalf("fire weight not overridden: %d", tables.Weights.Category[model.Fire])
	}
	if tables.Weights.Category[model.Structural] != 20 {
		t.Fatalf("structural weight should keep its default, got %d", tables.Weights.Category[model.Structural])
	}
	if tables.Weights.Equipment != 20 {
		t.Fatalf("equipment weight not overridden: %d", tables.Weights.Equipment)
	}
	if got := tables.Keywords[model.Zoning]; len(got) != 2 || got[0] != "variance" {
		t.Fatalf("zoning keywords not replaced: %v", got)
	}
	if len(tables.Keywords[model.Fire]) == 0 {
		t.Fatal("untouched keyword lists should keep their defaults")
	}
	if got := tables.Costs.Costs[model.Fire]; got != (plan.CostRange{Min: 5000, Max: 50000}) {
		t.Fatalf("fire cost not overridden: %+v", got)
	}
	if got := tables.Costs.Costs[model.Housing]; got != (plan.CostRange{Min: 300, Max: 5000}) {
		t.Fatalf("housing cost should keep its default: %+v", got)
	}
}

func TestLoadTablesMissingFile(t *testing.T) {
	_, err := LoadTables(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing override file")
	}
}

func TestLoadTablesMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("weights: [not a map"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadTables(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("FACADE_DB", "/tmp/test.db")
	t.Setenv("FACADE_APP_TOKEN", "tok-123")
	t.Setenv("FACADE_ADAPTER_TIMEOUT", "5s")
	t.Setenv("FACADE_CONCURRENCY", "3")

	cfg := Load()
	if cfg.DBPath != "/tmp/test.db" {
		t.Fatalf("db path: %q", cfg.DBPath)
	}
	if cfg.AppToken != "tok-123" {
		t.Fatalf("app token: %q", cfg.AppToken)
	}
	if cfg.AdapterTimeout != 5*time.Second {
		t.Fatalf("adapter timeout: %v", cfg.AdapterTimeout)
	}
	if cfg.Concurrency != 3 {
		t.Fatalf("concurrency: %d", cfg.Concurrency)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FACADE_DB", "")
	t.Setenv("FACADE_ADAPTER_TIMEOUT", "not-a-duration")
	t.Setenv("FACADE_SYNC_TIMEOUT", "-10s")

	cfg := Load()
	if cfg.DBPath != "facade.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.AdapterTimeout != 30*time.Second {
		t.Fatalf("bad duration should fall back to default, got %v", cfg.AdapterTimeout)
	}
	if cfg.SyncTimeout != 2*time.Minute {
		t.Fatalf("non-positive duration should fall back to default, got %v", cfg.SyncTimeout)
	}
}
