// Package adapter defines the contract between the sync orchestrator and the
// per-dataset fetchers, plus the registry the orchestrator discovers them
// through.
package adapter

import (
	"context"

	"github.com/calegray/facade/internal/model"
)

// Adapter fetches raw records for one (jurisdiction, dataset) pair.
// Implementations must honor context cancellation: a sync's per-adapter
// timeout arrives through ctx.
type Adapter interface {
	// Dataset names the source this adapter covers.
	Dataset() model.Dataset

	// Fetch returns every record matching the given identifiers. An empty
	// result with a nil error means the dataset genuinely has no matching
	// rows. Adapters that require a resolved identifier the property lacks
	// return nil, nil rather than failing the sync.
	Fetch(ctx context.Context, cfg Config, idents model.Identifiers) ([]model.RawRecord, error)
}

// Config holds source connection settings shared by a jurisdiction's adapters.
type Config struct {
	AppToken string            // API token, where the source supports one
	Endpoint string            // override base URL, mainly for tests
	Extra    map[string]string // adapter-specific settings
}
