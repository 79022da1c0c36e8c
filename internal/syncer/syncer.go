// Package syncer coordinates one end-to-end sync: identifier resolution,
// parallel adapter fetches, normalization, canonical-store upsert, and
// rescoring. Syncs can partially succeed: one source being down never
// aborts the rest.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/calegray/facade/internal/adapter"
	"github.com/calegray/facade/internal/model"
	"github.com/calegray/facade/internal/normalize"
	"github.com/calegray/facade/internal/resolve"
	"github.com/calegray/facade/internal/score"
	"github.com/calegray/facade/internal/store"
)

const (
	defaultAdapterTimeout = 30 * time.Second
	defaultSyncTimeout    = 2 * time.Minute
)

// Options tune one orchestrator instance.
type Options struct {
	AdapterTimeout time.Duration  // per-adapter deadline, default 30s
	SyncTimeout    time.Duration  // whole-sync deadline, default 2m
	Concurrency    int            // max simultaneous fetches, 0 = unbounded
	AdapterConfig  adapter.Config // passed through to every adapter
}

// Orchestrator runs syncs against one store.
type Orchestrator struct {
	store    store.Store
	scorer   *score.Scorer
	resolver func(model.Jurisdiction) resolve.Resolver
	adapters func(model.Jurisdiction) []adapter.Adapter
	opts     Options
}

// New creates an Orchestrator. A nil scorer uses the default weight table.
// The resolver and adapter lookups default to the jurisdiction registries;
// tests override them through the With* setters.
func New(st store.Store, scorer *score.Scorer, opts Options) *Orchestrator {
	if scorer == nil {
		scorer = score.New(score.Weights{}, nil)
	}
	if opts.AdapterTimeout <= 0 {
		opts.AdapterTimeout = defaultAdapterTimeout
	}
	if opts.SyncTimeout <= 0 {
		opts.SyncTimeout = defaultSyncTimeout
	}
	return &Orchestrator{
		store:    st,
		scorer:   scorer,
		resolver: resolve.ForJurisdiction,
		adapters: adapter.ForJurisdiction,
		opts:     opts,
	}
}

// WithResolver overrides the per-jurisdiction resolver lookup.
func (o *Orchestrator) WithResolver(fn func(model.Jurisdiction) resolve.Resolver) *Orchestrator {
	o.resolver = fn
	return o
}

// WithAdapters overrides the per-jurisdiction adapter lookup.
func (o *Orchestrator) WithAdapters(fn func(model.Jurisdiction) []adapter.Adapter) *Orchestrator {
	o.adapters = fn
	return o
}

// fetchResult is one adapter's contribution, collected before upsert.
type fetchResult struct {
	dataset model.Dataset
	records []model.RawRecord
	status  model.FetchStatus
	err     error
}

// Sync runs one sync for a stored property and returns the report.
// Per-adapter and per-record failures land in the report; only a missing
// property, a store failure during scoring, or caller cancellation surface
// as errors. Running Sync twice over unchanged upstream data is a no-op for
// stored state.
func (o *Orchestrator) Sync(ctx context.Context, propertyID string) (model.SyncReport, error) {
	report := model.SyncReport{
		RunID:      uuid.NewString(),
		PropertyID: propertyID,
		StartedAt:  time.Now().UTC(),
	}

	prop, err := o.store.Property(ctx, propertyID)
	if err != nil {
		return report, fmt.Errorf("sync %s: %w", propertyID, err)
	}

	// The sync deadline bounds resolution and fetching only. When it fires,
	// still-pending adapters come back TIMED_OUT and the sync proceeds with
	// whatever completed; upserts and rescoring run under the caller's
	// context so partial data still lands.
	fetchCtx, cancel := context.WithTimeout(ctx, o.opts.SyncTimeout)
	defer cancel()

	report.Resolved = o.resolveIdentifiers(fetchCtx, &prop)

	results := o.fetchAll(fetchCtx, prop)
	for _, res := range results {
		ar := model.AdapterReport{
			Dataset: res.dataset,
			Status:  res.status,
			Fetched: len(res.records),
		}
		if res.err != nil {
			ar.Error = res.err.Error()
		}
		report.Adapters = append(report.Adapters, ar)
	}

	if err := ctx.Err(); err != nil {
		// Caller cancelled: stop before touching stored state.
		report.FinishedAt = time.Now().UTC()
		return report, err
	}

	o.upsertAll(ctx, prop, results, &report)

	prop.LastSyncedAt = time.Now().UTC()
	if err := o.store.SaveProperty(ctx, prop); err != nil {
		slog.Warn("failed to persist property after sync", "property", propertyID, "error", err)
	}

	// Score and summary update stand or fall together. An unscored property
	// must stay visibly distinct from a 100-scored one, so store failures
	// here are loud.
	summary, err := o.rescore(ctx, propertyID)
	if err != nil {
		report.FinishedAt = time.Now().UTC()
		return report, fmt.Errorf("sync %s: scoring: %w", propertyID, err)
	}
	report.Summary = &summary
	report.FinishedAt = time.Now().UTC()

	slog.Info("sync complete",
		"property", propertyID,
		"run", report.RunID,
		"created", report.RecordsCreated,
		"updated", report.RecordsUpdated,
		"score", summary.Score,
		"tier", summary.Tier,
		"degraded", report.Degraded())
	return report, nil
}

// resolveIdentifiers fills in missing identifiers, degrading gracefully:
// ambiguity proceeds with the deterministic tie-break, lookup failure leaves
// the sync on address-only queries.
func (o *Orchestrator) resolveIdentifiers(ctx context.Context, prop *model.Property) bool {
	res, err := resolve.Ensure(ctx, o.resolver(prop.Jurisdiction), prop)
	switch {
	case errors.Is(err, resolve.ErrAmbiguous):
		slog.Warn("ambiguous address match, using lowest identifier",
			"property", prop.ID, "building_id", res.BuildingID)
	case err != nil:
		slog.Warn("identifier resolution unavailable, continuing with address",
			"property", prop.ID, "error", err)
	}
	return res.Resolved
}

// fetchAll invokes every adapter for the property's jurisdiction
// concurrently, each under its own timeout inside the overall sync deadline.
// One adapter's failure or timeout never cancels the others.
func (o *Orchestrator) fetchAll(ctx context.Context, prop model.Property) []fetchResult {
	adapters := o.adapters(prop.Jurisdiction)
	results := make([]fetchResult, len(adapters))

	g := &errgroup.Group{}
	if o.opts.Concurrency > 0 {
		g.SetLimit(o.opts.Concurrency)
	}

	idents := prop.Idents()
	for i, a := range adapters {
		i, a := i, a
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(ctx, o.opts.AdapterTimeout)
			defer cancel()

			records, err := a.Fetch(fetchCtx, o.opts.AdapterConfig, idents)
			res := fetchResult{dataset: a.Dataset(), records: records, status: model.FetchOK}
			if err != nil {
				res.records = nil
				res.err = err
				// A deadline here is the per-adapter or whole-sync timeout;
				// caller cancellation arrives as context.Canceled instead.
				if errors.Is(err, context.DeadlineExceeded) {
					res.status = model.FetchTimedOut
				} else {
					res.status = model.FetchFailed
				}
				slog.Warn("adapter fetch failed",
					"dataset", a.Dataset(), "status", res.status, "error", err)
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// upsertAll normalizes and stores every successfully fetched record.
// Per-record write failures are counted and skipped; the remaining upserts
// continue.
func (o *Orchestrator) upsertAll(ctx context.Context, prop model.Property, results []fetchResult, report *model.SyncReport) {
	for _, res := range results {
		if res.status != model.FetchOK {
			continue
		}
		norm := normalize.Normalize(res.dataset, prop.Jurisdiction, prop.ID, res.records)
		report.RecordsSkipped += norm.Skipped

		for _, rec := range norm.Records {
			created, err := o.store.UpsertRecord(ctx, rec)
			if err != nil {
				report.WriteFailures++
				slog.Warn("record upsert failed",
					"dataset", rec.Dataset, "key", rec.NaturalKey, "error", err)
				continue
			}
			if created {
				report.RecordsCreated++
			} else {
				report.RecordsUpdated++
			}
		}
	}
}

// rescore recomputes the summary from the stored record set and upserts it.
func (o *Orchestrator) rescore(ctx context.Context, propertyID string) (model.ComplianceSummary, error) {
	records, err := o.store.Records(ctx, propertyID)
	if err != nil {
		return model.ComplianceSummary{}, err
	}
	summary := o.scorer.Summarize(propertyID, records, time.Now().UTC())
	if err := o.store.UpsertSummary(ctx, summary); err != nil {
		return model.ComplianceSummary{}, err
	}
	return summary, nil
}
