package nyc

import (
	"context"

	"github.com/calegray/facade/internal/adapter"
	"github.com/calegray/facade/internal/model"
)

// DOB NOW elevator safety filings, resource e5aq-a4j2. Keyed on BIN.
const elevatorResource = "e5aq-a4j2"

func init() {
	adapter.Register(model.NYC, func() adapter.Adapter {
		return &ElevatorInspections{}
	})
}

// ElevatorInspections fetches elevator device inspection filings.
type ElevatorInspections struct{}

func (a *ElevatorInspections) Dataset() model.Dataset { return model.ElevatorInspections }

func (a *ElevatorInspections) Fetch(ctx context.Context, cfg adapter.Config, idents model.Identifiers) ([]model.RawRecord, error) {
	if idents.BuildingID == "" {
		return nil, nil
	}
	where := "bin = " + soqlQuote(idents.BuildingID)
	return fetchResource(ctx, cfg, elevatorResource, where)
}
