// Package plan turns a property's open records into a prioritized,
// cost-estimated remediation list. Generation is read-only and recomputed on
// every call; nothing here mutates stored state.
package plan

import (
	"fmt"
	"sort"

	"github.com/calegray/facade/internal/model"
	"github.com/calegray/facade/internal/risk"
)

// CostRange is the estimated remediation cost band for one category, USD.
type CostRange struct {
	Min int
	Max int
}

// Tables holds the static lookups the generator works from.
type Tables struct {
	Costs map[model.RiskCategory]CostRange
}

// DefaultTables returns the built-in cost bands.
func DefaultTables() Tables {
	return Tables{
		Costs: map[model.RiskCategory]CostRange{
			model.Fire:       {2000, 25000},
			model.Structural: {5000, 100000},
			model.Electrical: {1500, 15000},
			model.Mechanical: {2000, 30000},
			model.Plumbing:   {1000, 12000},
			model.Housing:    {300, 5000},
			model.Zoning:     {500, 10000},
			model.Other:      {250, 5000},
		},
	}
}

// Generator builds action plans from open records.
type Generator struct {
	tables Tables
	cat    *risk.Categorizer
}

// New creates a Generator. Nil-cost tables fall back to the defaults; a nil
// categorizer uses the default rules.
func New(t Tables, c *risk.Categorizer) *Generator {
	if t.Costs == nil {
		t = DefaultTables()
	}
	if c == nil {
		c = risk.New(nil)
	}
	return &Generator{tables: t, cat: c}
}

// Generate produces one ActionItem per open record, ordered by category
// severity then by age, oldest first. Records with no issue date sort after
// dated ones within their category.
func (g *Generator) Generate(records []model.NormalizedRecord) []model.ActionItem {
	var items []model.ActionItem
	for _, r := range records {
		if r.Status != model.StatusOpen {
			continue
		}
		cat := g.categorize(r)
		cost := g.tables.Costs[cat]
		items = append(items, model.ActionItem{
			Dataset:    r.Dataset,
			NaturalKey: r.NaturalKey,
			Category:   cat,
			Priority:   PriorityFor(cat),
			Title:      title(r, cat),
			IssuedAt:   r.IssuedAt,
			CostMin:    cost.Min,
			CostMax:    cost.Max,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := items[i].Category.Rank(), items[j].Category.Rank()
		if ri != rj {
			return ri < rj
		}
		ti, tj := items[i].IssuedAt, items[j].IssuedAt
		if ti.IsZero() != tj.IsZero() {
			return !ti.IsZero()
		}
		return ti.Before(tj)
	})
	return items
}

func (g *Generator) categorize(r model.NormalizedRecord) model.RiskCategory {
	switch r.Kind {
	case model.KindViolation, model.KindComplaint:
		return g.cat.Categorize(r.Description)
	case model.KindInspection:
		return model.Mechanical
	default:
		return model.Other
	}
}

// PriorityFor derives an item's urgency from its risk category.
func PriorityFor(cat model.RiskCategory) model.Priority {
	switch cat {
	case model.Fire, model.Structural:
		return model.PriorityCritical
	case model.Electrical:
		return model.PriorityHigh
	case model.Mechanical, model.Plumbing:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

func title(r model.NormalizedRecord, cat model.RiskCategory) string {
	desc := r.Description
	// Truncate on rune boundaries; municipal text is not all ASCII.
	if runes := []rune(desc); len(runes) > 80 {
		desc = string(runes[:77]) + "..."
	}
	if desc == "" {
		return fmt.Sprintf("Resolve %s %s %s", cat, r.Kind, r.NaturalKey)
	}
	return fmt.Sprintf("[%s] %s", cat, desc)
}
