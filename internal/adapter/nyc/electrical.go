package nyc

import (
	"context"

	"github.com/calegray/facade/internal/adapter"
	"github.com/calegray/facade/internal/model"
)

// DOB NOW electrical permit applications, resource dm9a-ab7w. Keyed on BIN.
const electricalResource = "dm9a-ab7w"

func init() {
	adapter.Register(model.NYC, func() adapter.Adapter {
		return &ElectricalPermits{}
	})
}

// ElectricalPermits fetches electrical work permit applications.
type ElectricalPermits struct{}

func (a *ElectricalPermits) Dataset() model.Dataset { return model.ElectricalPermits }

func (a *ElectricalPermits) Fetch(ctx context.Context, cfg adapter.Config, idents model.Identifiers) ([]model.RawRecord, error) {
	if idents.BuildingID == "" {
		return nil, nil
	}
	where := "bin = " + soqlQuote(idents.BuildingID)
	return fetchResource(ctx, cfg, electricalResource, where)
}
