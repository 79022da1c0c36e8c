// Package facade is the embeddable API for the compliance core: register a
// property, sync it against its jurisdiction's open-data sources, and read
// back the compliance summary and remediation plan.
//
// Basic usage:
//
//	svc, err := facade.New(facade.WithDBPath("facade.db"))
//	if err != nil { ... }
//	defer svc.Close()
//
//	svc.AddProperty(ctx, model.Property{
//		ID:           "prop-1",
//		Jurisdiction: model.NYC,
//		Address:      "100 Gold Street",
//	})
//	report, err := svc.SyncProperty(ctx, "prop-1")
//
// The sync report distinguishes datasets that returned no records from
// datasets whose fetch failed; callers must not present a failed fetch as a
// clean property.
package facade
