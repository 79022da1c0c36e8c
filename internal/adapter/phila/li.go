// Package phila implements the Philadelphia adapter set over the city's
// Carto SQL API (phl.carto.com).
package phila

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/calegray/facade/internal/adapter"
	"github.com/calegray/facade/internal/adapter/httpclient"
	"github.com/calegray/facade/internal/model"
)

const defaultEndpoint = "https://phl.carto.com"

func init() {
	adapter.Register(model.Philadelphia, func() adapter.Adapter {
		return &LIViolations{}
	})
}

// LIViolations fetches Licenses & Inspections code violations, keyed on the
// OPA account number with an address fallback.
type LIViolations struct{}

func (a *LIViolations) Dataset() model.Dataset { return model.LIViolations }

type cartoResponse struct {
	Rows []model.RawRecord `json:"rows"`
}

func (a *LIViolations) Fetch(ctx context.Context, cfg adapter.Config, idents model.Identifiers) ([]model.RawRecord, error) {
	var where string
	switch {
	case idents.ParcelID != "":
		where = "opa_account_num = " + sqlQuote(idents.ParcelID)
	case idents.Address != "":
		where = "address = " + sqlQuote(strings.ToUpper(idents.Address))
	default:
		return nil, nil
	}

	baseURL := cfg.Endpoint
	if baseURL == "" {
		baseURL = defaultEndpoint
	}
	client := httpclient.New(baseURL, "")

	q := url.Values{}
	q.Set("q", "SELECT * FROM violations WHERE "+where)

	var resp cartoResponse
	if err := client.GetJSON(ctx, "/api/v2/sql", q, &resp); err != nil {
		return nil, fmt.Errorf("carto violations: %w", err)
	}
	return resp.Rows, nil
}

func sqlQuote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}
