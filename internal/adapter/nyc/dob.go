package nyc

import (
	"context"

	"github.com/calegray/facade/internal/adapter"
	"github.com/calegray/facade/internal/model"
)

// DOB violations, resource 3h2n-5cm9. Keyed on BIN.
const dobViolationsResource = "3h2n-5cm9"

func init() {
	adapter.Register(model.NYC, func() adapter.Adapter {
		return &DOBViolations{}
	})
}

// DOBViolations fetches Department of Buildings violations.
type DOBViolations struct{}

func (a *DOBViolations) Dataset() model.Dataset { return model.DOBViolations }

func (a *DOBViolations) Fetch(ctx context.Context, cfg adapter.Config, idents model.Identifiers) ([]model.RawRecord, error) {
	if idents.BuildingID == "" {
		// DOB violations carry no reliable address columns; without a BIN
		// there is nothing to query.
		return nil, nil
	}
	where := "bin = " + soqlQuote(idents.BuildingID)
	return fetchResource(ctx, cfg, dobViolationsResource, where)
}
