package nyc

import (
	"context"

	"github.com/calegray/facade/internal/adapter"
	"github.com/calegray/facade/internal/model"
)

// DOB NOW boiler compliance filings, resource 52dp-yji6. Keyed on BIN; the
// dataset names its column bin_number.
const boilerResource = "52dp-yji6"

func init() {
	adapter.Register(model.NYC, func() adapter.Adapter {
		return &BoilerInspections{}
	})
}

// BoilerInspections fetches annual boiler inspection filings.
type BoilerInspections struct{}

func (a *BoilerInspections) Dataset() model.Dataset { return model.BoilerInspections }

func (a *BoilerInspections) Fetch(ctx context.Context, cfg adapter.Config, idents model.Identifiers) ([]model.RawRecord, error) {
	if idents.BuildingID == "" {
		return nil, nil
	}
	where := "bin_number = " + soqlQuote(idents.BuildingID)
	return fetchResource(ctx, cfg, boilerResource, where)
}
