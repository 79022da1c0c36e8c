// Package risk classifies violation and complaint descriptions into risk
// categories by ordered keyword matching.
package risk

import (
	"strings"

	"github.com/calegray/facade/internal/model"
)

// Rules maps each category to its trigger keywords. The map carries no
// ordering; matching always walks model.CategoryOrder so that a description
// mentioning both "fire" and "wiring" lands in FIRE, the more severe
// category, no matter how the table was built.
type Rules map[model.RiskCategory][]string

// Categorizer classifies description text against a keyword rule table.
// It is pure: the same description always yields the same category.
type Categorizer struct {
	rules Rules
}

// New creates a Categorizer. A nil table uses DefaultRules.
func New(rules Rules) *Categorizer {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Categorizer{rules: rules}
}

// Categorize returns the most severe category whose keywords appear in the
// description. Matching is case-insensitive substring. Descriptions that
// match nothing, including empty ones, map to OTHER.
func (c *Categorizer) Categorize(description string) model.RiskCategory {
	desc := strings.ToLower(description)
	for _, cat := range model.CategoryOrder {
		for _, kw := range c.rules[cat] {
			if strings.Contains(desc, kw) {
				return cat
			}
		}
	}
	return model.Other
}
