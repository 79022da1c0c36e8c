// Package store is the canonical persistence layer: properties, normalized
// records, and compliance summaries.
package store

import (
	"context"
	"errors"

	"github.com/calegray/facade/internal/model"
)

// ErrNotFound is returned for lookups of properties or summaries that were
// never stored.
var ErrNotFound = errors.New("store: not found")

// Store is the canonical store contract. Records upsert by
// (dataset, jurisdiction, natural key); summaries upsert by property.
type Store interface {
	// SaveProperty inserts or replaces the property row.
	SaveProperty(ctx context.Context, p model.Property) error

	// Property returns a stored property, or ErrNotFound.
	Property(ctx context.Context, id string) (model.Property, error)

	// UpsertRecord writes one normalized record, reporting whether a new
	// row was created (false means an existing row was updated in place).
	UpsertRecord(ctx context.Context, rec model.NormalizedRecord) (created bool, err error)

	// Records returns every stored record for a property.
	Records(ctx context.Context, propertyID string) ([]model.NormalizedRecord, error)

	// OpenRecords returns the property's records with OPEN status.
	OpenRecords(ctx context.Context, propertyID string) ([]model.NormalizedRecord, error)

	// UpsertSummary replaces the property's compliance summary.
	UpsertSummary(ctx context.Context, s model.ComplianceSummary) error

	// Summary returns the stored summary, or ErrNotFound for a property
	// that has never been scored. Never a default 100.
	Summary(ctx context.Context, propertyID string) (model.ComplianceSummary, error)

	Close() error
}
