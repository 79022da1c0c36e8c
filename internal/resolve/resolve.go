// Package resolve turns free-text addresses into the canonical building and
// parcel identifiers adapters query by.
package resolve

import (
	"context"
	"errors"
	"regexp"

	"github.com/calegray/facade/internal/model"
)

// ErrAmbiguous means the lookup returned multiple equally strong matches.
// Resolvers still return a usable Result alongside it, tie-broken to the
// lowest natural-sort building identifier.
var ErrAmbiguous = errors.New("resolve: ambiguous address match")

// ErrUnavailable means the lookup service itself failed. Non-fatal: the sync
// continues degraded with address-only queries.
var ErrUnavailable = errors.New("resolve: lookup service unavailable")

// Result carries the outcome of one resolution attempt. When Resolved is
// false the original address is still present so downstream stages can run
// address-keyed queries.
type Result struct {
	Resolved   bool
	Address    string
	BuildingID string
	ParcelID   string
	Borough    string
}

// Resolver is the per-jurisdiction address lookup.
type Resolver interface {
	Resolve(ctx context.Context, address string) (Result, error)
}

var binPattern = regexp.MustCompile(`^[1-5]\d{6}$`)
var bblPattern = regexp.MustCompile(`^[1-5]\d{9}$`)
var opaPattern = regexp.MustCompile(`^\d{9}$`)

// ValidBuildingID reports whether id is a well-formed building identifier
// for the jurisdiction (NYC BIN: 7 digits, leading borough digit 1-5).
func ValidBuildingID(j model.Jurisdiction, id string) bool {
	switch j {
	case model.NYC:
		return binPattern.MatchString(id)
	default:
		return false
	}
}

// ValidParcelID reports whether id is a well-formed parcel identifier for
// the jurisdiction (NYC BBL: 10 digits; Philadelphia OPA number: 9 digits).
func ValidParcelID(j model.Jurisdiction, id string) bool {
	switch j {
	case model.NYC:
		return bblPattern.MatchString(id)
	case model.Philadelphia:
		return opaPattern.MatchString(id)
	default:
		return false
	}
}

// Ensure fills in the property's identifiers, calling the resolver only when
// needed. A property that already carries a well-formed building or parcel
// identifier is returned as resolved without an external call, and a fresh
// lookup never overwrites an identifier the property already has; a worse
// match must not silently displace a known-good one.
func Ensure(ctx context.Context, r Resolver, p *model.Property) (Result, error) {
	if ValidBuildingID(p.Jurisdiction, p.BuildingID) || ValidParcelID(p.Jurisdiction, p.ParcelID) {
		return Result{
			Resolved:   true,
			Address:    p.Address,
			BuildingID: p.BuildingID,
			ParcelID:   p.ParcelID,
			Borough:    p.Borough,
		}, nil
	}

	if r == nil {
		return Result{Address: p.Address}, nil
	}

	res, err := r.Resolve(ctx, p.Address)
	if err != nil && !errors.Is(err, ErrAmbiguous) {
		return Result{Address: p.Address}, err
	}
	if res.Resolved {
		if p.BuildingID == "" {
			p.BuildingID = res.BuildingID
		}
		if p.ParcelID == "" {
			p.ParcelID = res.ParcelID
		}
		if p.Borough == "" {
			p.Borough = res.Borough
		}
	}
	return res, err
}

// ForJurisdiction returns the resolver for a jurisdiction, or nil when the
// jurisdiction has no identifier lookup and syncs run address-only.
// Philadelphia adapters key on the OPA number the caller supplies directly.
func ForJurisdiction(j model.Jurisdiction) Resolver {
	switch j {
	case model.NYC:
		return &NYCResolver{}
	default:
		return nil
	}
}

// naturalLess compares identifiers numerically where both are digit runs,
// lexically otherwise. Used for the deterministic ambiguity tie-break.
func naturalLess(a, b string) bool {
	if len(a) != len(b) && allDigits(a) && allDigits(b) {
		return len(a) < len(b)
	}
	return a < b
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
