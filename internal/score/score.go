// Package score computes the 0-100 compliance score and risk tier from a
// property's open records.
package score

import (
	"time"

	"github.com/calegray/facade/internal/model"
	"github.com/calegray/facade/internal/risk"
)

// Weights holds the per-category deduction applied for each open violation
// or complaint, plus the flat deduction per equipment issue. Passed in
// explicitly so tests and deployments can override the table.
type Weights struct {
	Category  map[model.RiskCategory]int
	Equipment int
}

// DefaultWeights returns the standard deduction table.
func DefaultWeights() Weights {
	return Weights{
		Category: map[model.RiskCategory]int{
			model.Fire:       25,
			model.Structural: 20,
			model.Electrical: 15,
			model.Mechanical: 12,
			model.Plumbing:   12,
			model.Housing:    5,
			model.Zoning:     5,
			model.Other:      5,
		},
		Equipment: 10,
	}
}

// Scorer derives a ComplianceSummary from a record set. Scoring is a pure
// function of the records and the weight table: re-running it without new
// data reproduces the identical score.
type Scorer struct {
	weights Weights
	cat     *risk.Categorizer
}

// New creates a Scorer with the given weights and categorizer. Zero-value
// weights fall back to the defaults; a nil categorizer uses the default rules.
func New(w Weights, c *risk.Categorizer) *Scorer {
	if w.Category == nil {
		w = DefaultWeights()
	}
	if c == nil {
		c = risk.New(nil)
	}
	return &Scorer{weights: w, cat: c}
}

// Summarize scores a property against its full current record set. Only OPEN
// records deduct; resolved and unknown-status records count toward totals but
// carry no penalty.
func (s *Scorer) Summarize(propertyID string, records []model.NormalizedRecord, now time.Time) model.ComplianceSummary {
	sum := model.ComplianceSummary{
		PropertyID: propertyID,
		ByDataset:  make(map[model.Dataset]int),
		ByCategory: make(map[model.RiskCategory]int),
		AnalyzedAt: now,
	}

	deduction := 0
	for _, r := range records {
		sum.TotalRecords++
		if r.Status != model.StatusOpen {
			continue
		}
		sum.OpenRecords++
		sum.ByDataset[r.Dataset]++

		switch r.Kind {
		case model.KindViolation, model.KindComplaint:
			cat := s.cat.Categorize(r.Description)
			sum.ByCategory[cat]++
			deduction += s.weights.Category[cat]
		case model.KindInspection:
			if r.EquipmentIssue() {
				sum.EquipmentIssues++
				deduction += s.weights.Equipment
			}
		}
	}

	sum.Score = clamp(100 - deduction)
	sum.Tier = Tier(sum.Score)
	return sum
}

// Tier maps a score to its risk tier. Bands are monotonic and non-overlapping:
// >=90 LOW, 70-89 MEDIUM, 50-69 HIGH, <50 CRITICAL.
func Tier(score int) model.RiskTier {
	switch {
	case score >= 90:
		return model.TierLow
	case score >= 70:
		return model.TierMedium
	case score >= 50:
		return model.TierHigh
	default:
		return model.TierCritical
	}
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
