package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/calegray/facade/internal/model"
	"github.com/calegray/facade/internal/plan"
	"github.com/calegray/facade/internal/risk"
	"github.com/calegray/facade/internal/score"
)

// Tables bundles the scoring, categorization, and cost lookups. They are
// always passed into the components explicitly; nothing reads them as
// hidden global state.
type Tables struct {
	Weights  score.Weights
	Keywords risk.Rules
	Costs    plan.Tables
}

// DefaultTables returns the built-in tables.
func DefaultTables() Tables {
	return Tables{
		Weights:  score.DefaultWeights(),
		Keywords: risk.DefaultRules(),
		Costs:    plan.DefaultTables(),
	}
}

// tablesFile is the YAML shape of an override file. Every section is
// optional; omitted sections keep their defaults.
type tablesFile struct {
	Weights struct {
		Category  map[string]int `yaml:"category"`
		Equipment *int           `yaml:"equipment"`
	} `yaml:"weights"`
	Keywords map[string][]string `yaml:"keywords"`
	Costs    map[string]struct {
		Min int `yaml:"min"`
		Max int `yaml:"max"`
	} `yaml:"costs"`
}

// LoadTables reads a YAML override file on top of the defaults. An empty
// path returns the defaults unchanged.
func LoadTables(path string) (Tables, error) {
	t := DefaultTables()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("load tables: %w", err)
	}
	var f tablesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return t, fmt.Errorf("parse tables %s: %w", path, err)
	}

	for name, w := range f.Weights.Category {
		t.Weights.Category[model.RiskCategory(name)] = w
	}
	if f.Weights.Equipment != nil {
		t.Weights.Equipment = *f.Weights.Equipment
	}
	for name, kws := range f.Keywords {
		t.Keywords[model.RiskCategory(name)] = kws
	}
	for name, c := range f.Costs {
		t.Costs.Costs[model.RiskCategory(name)] = plan.CostRange{Min: c.Min, Max: c.Max}
	}
	return t, nil
}
