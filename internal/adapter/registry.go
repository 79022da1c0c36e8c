package adapter

import "github.com/calegray/facade/internal/model"

// Constructor is a function that creates a new Adapter instance.
type Constructor func() Adapter

var registry = map[model.Jurisdiction][]Constructor{}

// Register adds an adapter constructor under the given jurisdiction.
// The adapter set per jurisdiction is a closed, known list; registration
// happens in init functions of the adapter packages.
func Register(j model.Jurisdiction, ctor Constructor) {
	registry[j] = append(registry[j], ctor)
}

// ForJurisdiction instantiates every adapter registered for a jurisdiction.
func ForJurisdiction(j model.Jurisdiction) []Adapter {
	ctors := registry[j]
	adapters := make([]Adapter, 0, len(ctors))
	for _, ctor := range ctors {
		adapters = append(adapters, ctor())
	}
	return adapters
}

// Datasets returns the dataset names registered for a jurisdiction.
func Datasets(j model.Jurisdiction) []model.Dataset {
	var names []model.Dataset
	for _, a := range ForJurisdiction(j) {
		names = append(names, a.Dataset())
	}
	return names
}
