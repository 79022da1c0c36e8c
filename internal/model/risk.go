package model

// RiskCategory classifies a violation or complaint by the hazard it
// describes. Categories are ordered by severity; CategoryOrder is the single
// source of truth for that ordering.
type RiskCategory string

const (
	Fire       RiskCategory = "FIRE"
	Structural RiskCategory = "STRUCTURAL"
	Electrical RiskCategory = "ELECTRICAL"
	Mechanical RiskCategory = "MECHANICAL"
	Plumbing   RiskCategory = "PLUMBING"
	Housing    RiskCategory = "HOUSING"
	Zoning     RiskCategory = "ZONING"
	Other      RiskCategory = "OTHER"
)

// CategoryOrder lists risk categories from most to least severe. Keyword
// matching, plan ordering, and priority derivation all follow this order.
var CategoryOrder = []RiskCategory{
	Fire, Structural, Electrical, Mechanical, Plumbing, Housing, Zoning, Other,
}

// Rank returns the category's position in CategoryOrder (0 = most severe).
// Unknown categories rank after OTHER.
func (c RiskCategory) Rank() int {
	for i, cat := range CategoryOrder {
		if cat == c {
			return i
		}
	}
	return len(CategoryOrder)
}

// RiskTier is the coarse compliance classification derived from the score.
type RiskTier string

const (
	TierLow      RiskTier = "LOW"
	TierMedium   RiskTier = "MEDIUM"
	TierHigh     RiskTier = "HIGH"
	TierCritical RiskTier = "CRITICAL"
)

// Priority ranks an action item by urgency.
type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityLow      Priority = "LOW"
)
