package nyc

import (
	"context"

	"github.com/calegray/facade/internal/adapter"
	"github.com/calegray/facade/internal/model"
)

// HPD housing maintenance violations, resource wvxf-dwi5. Keyed on BIN with
// an address fallback, since HPD stores house number and street separately.
const hpdViolationsResource = "wvxf-dwi5"

func init() {
	adapter.Register(model.NYC, func() adapter.Adapter {
		return &HPDViolations{}
	})
}

// HPDViolations fetches Housing Preservation & Development violations.
type HPDViolations struct{}

func (a *HPDViolations) Dataset() model.Dataset { return model.HPDViolations }

func (a *HPDViolations) Fetch(ctx context.Context, cfg adapter.Config, idents model.Identifiers) ([]model.RawRecord, error) {
	var where string
	switch {
	case idents.BuildingID != "":
		where = "bin = " + soqlQuote(idents.BuildingID)
	case idents.Address != "":
		houseNo, street := splitAddress(idents.Address)
		if houseNo == "" {
			return nil, nil
		}
		where = "housenumber = " + soqlQuote(houseNo) + " AND streetname = " + soqlQuote(street)
	default:
		return nil, nil
	}
	return fetchResource(ctx, cfg, hpdViolationsResource, where)
}
