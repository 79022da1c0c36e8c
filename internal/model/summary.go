package model

import "time"

// ComplianceSummary is the per-property scoring result, one row per property,
// replaced wholesale on every successful sync. Score and tier are always
// recomputed together from the current open-record set.
type ComplianceSummary struct {
	PropertyID      string
	Score           int // 0-100
	Tier            RiskTier
	TotalRecords    int
	OpenRecords     int
	ByDataset       map[Dataset]int      // open count per dataset
	ByCategory      map[RiskCategory]int // open violation/complaint count per category
	EquipmentIssues int
	AnalyzedAt      time.Time
}

// ActionItem is one prioritized remediation step, derived on read from an
// open record. Never persisted; the open records are the system of record.
type ActionItem struct {
	Dataset    Dataset
	NaturalKey string
	Category   RiskCategory
	Priority   Priority
	Title      string
	IssuedAt   time.Time
	CostMin    int // estimated remediation cost, USD
	CostMax    int
}
