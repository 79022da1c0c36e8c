package model

import "time"

// Jurisdiction identifies the municipality a property belongs to.
// Each jurisdiction has its own adapter set and identifier conventions.
type Jurisdiction string

const (
	NYC          Jurisdiction = "nyc"
	Philadelphia Jurisdiction = "philadelphia"
)

// Identifiers is the set of keys adapters can query a property by.
// Address is always present; the rest are filled in by resolution.
type Identifiers struct {
	Address    string
	BuildingID string // e.g. NYC BIN
	ParcelID   string // e.g. NYC BBL, Philadelphia OPA number
	Borough    string
}

// Property is the subject of a compliance analysis. The ID is owned by the
// surrounding application and opaque to this core.
type Property struct {
	ID           string
	Jurisdiction Jurisdiction
	Address      string
	BuildingID   string
	ParcelID     string
	Borough      string
	LastSyncedAt time.Time
}

// Idents collects the property's query keys for adapter calls.
func (p Property) Idents() Identifiers {
	return Identifiers{
		Address:    p.Address,
		BuildingID: p.BuildingID,
		ParcelID:   p.ParcelID,
		Borough:    p.Borough,
	}
}
