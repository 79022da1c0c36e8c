package nyc

import (
	"context"

	"github.com/calegray/facade/internal/adapter"
	"github.com/calegray/facade/internal/model"
)

// 311 service requests, resource erm2-nwe9. Keyed on BBL with an address
// fallback against incident_address.
const complaintsResource = "erm2-nwe9"

func init() {
	adapter.Register(model.NYC, func() adapter.Adapter {
		return &Complaints311{}
	})
}

// Complaints311 fetches citizen complaints filed through 311.
type Complaints311 struct{}

func (a *Complaints311) Dataset() model.Dataset { return model.Complaints311 }

func (a *Complaints311) Fetch(ctx context.Context, cfg adapter.Config, idents model.Identifiers) ([]model.RawRecord, error) {
	var where string
	switch {
	case idents.ParcelID != "":
		where = "bbl = " + soqlQuote(idents.ParcelID)
	case idents.Address != "":
		houseNo, street := splitAddress(idents.Address)
		where = "incident_address = " + soqlQuote(houseNo+" "+street)
	default:
		return nil, nil
	}
	return fetchResource(ctx, cfg, complaintsResource, where)
}
