package resolve

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/calegray/facade/internal/adapter/httpclient"
)

const geosearchEndpoint = "https://geosearch.planninglabs.nyc"

// NYCResolver resolves addresses to BIN/BBL through the Planning Labs
// GeoSearch API.
type NYCResolver struct {
	Endpoint string // override base URL, mainly for tests
}

type geosearchResponse struct {
	Features []geosearchFeature `json:"features"`
}

type geosearchFeature struct {
	Properties struct {
		Confidence float64 `json:"confidence"`
		Borough    string  `json:"borough"`
		Addendum   struct {
			PAD struct {
				BIN string `json:"bin"`
				BBL string `json:"bbl"`
			} `json:"pad"`
		} `json:"addendum"`
	} `json:"properties"`
}

// Resolve looks the address up in GeoSearch. Multiple matches at the top
// confidence score return the lowest natural-sort BIN together with
// ErrAmbiguous; service failures map to ErrUnavailable.
func (r *NYCResolver) Resolve(ctx context.Context, address string) (Result, error) {
	baseURL := r.Endpoint
	if baseURL == "" {
		baseURL = geosearchEndpoint
	}
	client := httpclient.New(baseURL, "")

	q := url.Values{}
	q.Set("text", address)
	q.Set("size", "5")

	var resp geosearchResponse
	if err := client.GetJSON(ctx, "/v2/search", q, &resp); err != nil {
		return Result{Address: address}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var candidates []geosearchFeature
	for _, f := range resp.Features {
		if f.Properties.Addendum.PAD.BIN != "" {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		return Result{Address: address}, nil
	}

	top := candidates[0].Properties.Confidence
	var tied []geosearchFeature
	for _, f := range candidates {
		if f.Properties.Confidence == top {
			tied = append(tied, f)
		}
	}
	sort.Slice(tied, func(i, j int) bool {
		return naturalLess(tied[i].Properties.Addendum.PAD.BIN, tied[j].Properties.Addendum.PAD.BIN)
	})

	best := tied[0]
	res := Result{
		Resolved:   true,
		Address:    address,
		BuildingID: best.Properties.Addendum.PAD.BIN,
		ParcelID:   best.Properties.Addendum.PAD.BBL,
		Borough:    best.Properties.Borough,
	}
	if len(tied) > 1 {
		return res, ErrAmbiguous
	}
	return res, nil
}

