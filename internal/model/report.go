package model

import "time"

// FetchStatus is the outcome of one adapter call within a sync.
type FetchStatus string

const (
	FetchOK       FetchStatus = "OK"
	FetchFailed   FetchStatus = "FAILED"
	FetchTimedOut FetchStatus = "TIMED_OUT"
)

// AdapterReport records one adapter's contribution to a sync. An OK status
// with zero records means the dataset genuinely has no matching rows, which
// is different from FAILED: the caller must not read a failed fetch as
// "verified zero violations".
type AdapterReport struct {
	Dataset Dataset
	Status  FetchStatus
	Fetched int
	Error   string
}

// SyncReport is the result of one end-to-end sync run for a property.
type SyncReport struct {
	RunID          string
	PropertyID     string
	Resolved       bool // identifier resolution succeeded or was already done
	Adapters       []AdapterReport
	RecordsCreated int
	RecordsUpdated int
	RecordsSkipped int // dropped by the normalizer (no usable natural key)
	WriteFailures  int
	Summary        *ComplianceSummary
	StartedAt      time.Time
	FinishedAt     time.Time
}

// Degraded reports whether any dataset failed or timed out, meaning the
// stored state may be stale for those sources.
func (r SyncReport) Degraded() bool {
	for _, a := range r.Adapters {
		if a.Status != FetchOK {
			return true
		}
	}
	return false
}
