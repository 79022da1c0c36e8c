package facade

import (
	"context"
	"fmt"

	"github.com/calegray/facade/internal/model"
	"github.com/calegray/facade/internal/plan"
	"github.com/calegray/facade/internal/risk"
	"github.com/calegray/facade/internal/score"
	"github.com/calegray/facade/internal/store"
	"github.com/calegray/facade/internal/syncer"

	// Register adapter implementations.
	_ "github.com/calegray/facade/internal/adapter/nyc"
	_ "github.com/calegray/facade/internal/adapter/phila"
)

// Service wires the store, orchestrator, and plan generator behind one API.
// Safe for concurrent use; syncs of different properties run independently.
type Service struct {
	store    store.Store
	orch     *syncer.Orchestrator
	planner  *plan.Generator
	ownStore bool
}

// New creates a Service, opening the SQLite store unless one is supplied.
func New(opts ...Option) (*Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	st := o.st
	ownStore := false
	if st == nil {
		var err error
		st, err = store.OpenSQLite(o.dbPath)
		if err != nil {
			return nil, fmt.Errorf("facade: %w", err)
		}
		ownStore = true
	}

	categorizer := risk.New(o.tables.Keywords)
	scorer := score.New(o.tables.Weights, categorizer)
	orch := syncer.New(st, scorer, syncer.Options{
		AdapterTimeout: o.adapterTimeout,
		SyncTimeout:    o.syncTimeout,
		Concurrency:    o.concurrency,
		AdapterConfig:  o.adapterConfig(),
	})

	return &Service{
		store:    st,
		orch:     orch,
		planner:  plan.New(o.tables.Costs, categorizer),
		ownStore: ownStore,
	}, nil
}

// AddProperty registers or updates a property for analysis.
func (s *Service) AddProperty(ctx context.Context, p model.Property) error {
	if p.ID == "" || p.Address == "" {
		return fmt.Errorf("facade: property needs an ID and an address")
	}
	return s.store.SaveProperty(ctx, p)
}

// Property returns a registered property.
func (s *Service) Property(ctx context.Context, id string) (model.Property, error) {
	return s.store.Property(ctx, id)
}

// SyncProperty runs one sync and returns its report. The report is valid
// even when err is non-nil, showing how far the sync got.
func (s *Service) SyncProperty(ctx context.Context, id string) (model.SyncReport, error) {
	return s.orch.Sync(ctx, id)
}

// ComplianceSummary returns the stored summary from the latest sync.
// store.ErrNotFound means the property has never been scored.
func (s *Service) ComplianceSummary(ctx context.Context, id string) (model.ComplianceSummary, error) {
	return s.store.Summary(ctx, id)
}

// ActionPlan derives the prioritized remediation list from the property's
// open records. Recomputed on every call, never persisted.
func (s *Service) ActionPlan(ctx context.Context, id string) ([]model.ActionItem, error) {
	records, err := s.store.OpenRecords(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("facade: action plan: %w", err)
	}
	return s.planner.Generate(records), nil
}

// Close releases the store if the Service opened it.
func (s *Service) Close() error {
	if s.ownStore {
		return s.store.Close()
	}
	return nil
}
