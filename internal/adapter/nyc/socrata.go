// Package nyc implements the New York City adapter set over the Socrata
// Open Data API (data.cityofnewyork.us). One file per dataset; each
// registers itself for the NYC jurisdiction.
package nyc

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/calegray/facade/internal/adapter"
	"github.com/calegray/facade/internal/adapter/httpclient"
	"github.com/calegray/facade/internal/model"
)

const defaultEndpoint = "https://data.cityofnewyork.us"
const pageSize = 1000

// fetchResource pages through one Socrata resource with the given SoQL
// where-clause and returns every matching row as a raw record.
func fetchResource(ctx context.Context, cfg adapter.Config, resource, where string) ([]model.RawRecord, error) {
	baseURL := cfg.Endpoint
	if baseURL == "" {
		baseURL = defaultEndpoint
	}
	client := httpclient.New(baseURL, cfg.AppToken)
	path := "/resource/" + resource + ".json"

	var results []model.RawRecord
	offset := 0
	for {
		q := url.Values{}
		q.Set("$where", where)
		q.Set("$limit", fmt.Sprint(pageSize))
		q.Set("$offset", fmt.Sprint(offset))

		var page []model.RawRecord
		if err := client.GetJSON(ctx, path, q, &page); err != nil {
			return nil, fmt.Errorf("socrata %s: %w", resource, err)
		}

		results = append(results, page...)
		if len(page) < pageSize {
			return results, nil
		}
		offset += pageSize
	}
}

// soqlQuote escapes a value for use inside a single-quoted SoQL literal.
func soqlQuote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}

// splitAddress breaks "100 Gold Street" into house number and street name
// for datasets keyed on separate address fields. The street name comes back
// uppercased, matching how NYC datasets store it.
func splitAddress(address string) (houseNo, street string) {
	fields := strings.Fields(strings.TrimSpace(address))
	if len(fields) < 2 {
		return "", strings.ToUpper(strings.TrimSpace(address))
	}
	return fields[0], strings.ToUpper(strings.Join(fields[1:], " "))
}
