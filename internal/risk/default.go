package risk

import "github.com/calegray/facade/internal/model"

// DefaultRules returns the built-in keyword table. Keywords are lowercase;
// matching is substring, so "sprinkler" also catches "sprinklers".
func DefaultRules() Rules {
	return Rules{
		model.Fire: {
			"fire", "smoke", "alarm", "sprinkler", "egress", "exit",
			"flammable", "combustible", "carbon monoxide", "standpipe",
		},
		model.Structural: {
			"structural", "facade", "collapse", "crack", "foundation",
			"retaining wall", "balcony", "parapet", "shoring", "unsafe building",
		},
		model.Electrical: {
			"electric", "wiring", "outlet", "circuit", "conduit", "exposed wire",
		},
		model.Mechanical: {
			"elevator", "boiler", "hvac", "mechanical", "ventilation",
			"escalator", "gas piping",
		},
		model.Plumbing: {
			"plumbing", "water leak", "sewage", "sewer", "drain", "pipe burst",
			"hot water",
		},
		model.Housing: {
			"heat", "mold", "pest", "rodent", "roach", "vermin", "lead paint",
			"bedbug", "garbage", "sanitation", "window guard",
		},
		model.Zoning: {
			"zoning", "illegal conversion", "certificate of occupancy",
			"occupancy", "illegal use", "signage",
		},
	}
}
