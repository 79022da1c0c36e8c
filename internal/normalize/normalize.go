// Package normalize maps dataset-specific raw records onto the canonical
// NormalizedRecord shape. Each dataset gets its own mapper with an explicit
// open/resolved rule, since the sources disagree on whether status lives in a
// disposition date or a status string, and ambiguous records stay UNKNOWN
// rather than being guessed.
package normalize

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/calegray/facade/internal/model"
)

// Result is the outcome of normalizing one adapter's fetch.
type Result struct {
	Records []model.NormalizedRecord
	Skipped int // dropped for lacking a usable natural key
}

type mapper func(model.RawRecord) (model.NormalizedRecord, bool)

var mappers = map[model.Dataset]mapper{
	model.DOBViolations:       mapDOBViolation,
	model.HPDViolations:       mapHPDViolation,
	model.ElevatorInspections: mapElevatorInspection,
	model.BoilerInspections:   mapBoilerInspection,
	model.Complaints311:       mapComplaint311,
	model.ElectricalPermits:   mapElectricalPermit,
	model.LIViolations:        mapLIViolation,
}

// Normalize converts one adapter's raw records. Records without a natural
// key are dropped and counted; upserting them under a synthetic key would
// collide across runs.
func Normalize(dataset model.Dataset, j model.Jurisdiction, propertyID string, raws []model.RawRecord) Result {
	m, ok := mappers[dataset]
	if !ok {
		slog.Warn("no normalizer for dataset", "dataset", dataset)
		return Result{Skipped: len(raws)}
	}

	var res Result
	for _, raw := range raws {
		rec, ok := m(raw)
		if !ok {
			res.Skipped++
			continue
		}
		rec.PropertyID = propertyID
		rec.Jurisdiction = j
		rec.Dataset = dataset
		rec.Raw = raw
		res.Records = append(res.Records, rec)
	}
	if res.Skipped > 0 {
		slog.Warn("dropped records without natural key",
			"dataset", dataset, "skipped", res.Skipped)
	}
	return res
}

// str returns the first non-empty value among keys, stringified. Socrata
// usually returns strings but numeric columns come back as float64.
func str(r model.RawRecord, keys ...string) string {
	for _, k := range keys {
		switch v := r[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			if v == float64(int64(v)) {
				return fmt.Sprintf("%d", int64(v))
			}
			return fmt.Sprintf("%v", v)
		}
	}
	return ""
}

// dateLayouts covers the formats seen across the municipal datasets.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
	"20060102",
}

// date parses the first non-empty value among keys. Unparseable dates come
// back as the zero time, never "today". A default date would corrupt
// age-based prioritization.
func date(r model.RawRecord, keys ...string) time.Time {
	raw := str(r, keys...)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	slog.Debug("unparseable date retained as unknown", "value", raw)
	return time.Time{}
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
