package model

import "time"

// Dataset names one (jurisdiction, source) pair an adapter fetches from.
type Dataset string

const (
	DOBViolations       Dataset = "dob_violations"
	HPDViolations       Dataset = "hpd_violations"
	ElevatorInspections Dataset = "elevator_inspections"
	BoilerInspections   Dataset = "boiler_inspections"
	Complaints311       Dataset = "311_complaints"
	ElectricalPermits   Dataset = "electrical_permits"
	LIViolations        Dataset = "li_violations"
)

// RecordKind tags the variant of a NormalizedRecord.
type RecordKind string

const (
	KindViolation  RecordKind = "violation"
	KindInspection RecordKind = "inspection"
	KindPermit     RecordKind = "permit"
	KindComplaint  RecordKind = "complaint"
)

// RecordStatus is the normalized open/closed state of a record.
// UNKNOWN means the source did not carry enough signal to decide; ambiguous
// records are never guessed OPEN or RESOLVED.
type RecordStatus string

const (
	StatusOpen     RecordStatus = "OPEN"
	StatusResolved RecordStatus = "RESOLVED"
	StatusUnknown  RecordStatus = "UNKNOWN"
)

// RawRecord is one record as returned by an adapter, schema owned by the
// source dataset.
type RawRecord map[string]any

// NormalizedRecord is the canonical shape every dataset maps onto.
// (Dataset, Jurisdiction, NaturalKey) is the deduplication key: re-ingesting
// the same record updates it in place.
type NormalizedRecord struct {
	PropertyID   string
	Jurisdiction Jurisdiction
	Dataset      Dataset
	Kind         RecordKind
	NaturalKey   string // dataset-native unique ID, e.g. a violation number
	IssuedAt     time.Time
	Status       RecordStatus
	Description  string
	Raw          RawRecord // original payload, retained for audit

	// Violation fields.
	SeverityClass string

	// Inspection fields.
	DeviceID         string
	InspectionResult string

	// Permit fields.
	WorkType    string
	CompletedAt time.Time
}

// EquipmentIssue reports whether the record counts as a failed or overdue
// equipment inspection for scoring. The normalizer marks satisfactory
// inspections RESOLVED, so an open inspection is an unremediated defect.
func (r NormalizedRecord) EquipmentIssue() bool {
	return r.Kind == KindInspection && r.Status == StatusOpen
}
