package sync

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Toufiq-trt/toufiqsBALANCING/importer"
	"github.com/Toufiq-trt/toufiqsBALANCING/inventory"
)

//go:generate mockgen -source=orchestrator.go -destination=orchestrator_mock.go -package=sync

// ItemStore is the slice of the local store the orchestrator drives:
// a read of the current collection and the apply step for engine output.
type ItemStore interface {
	Items() []inventory.Item
	Replace(items []inventory.Item) error
}

// Reader fetches one source and normalizes it into candidate records.
type Reader interface {
	Read(ctx context.Context, src Source) (importer.Result, error)
}

// Source names one remote tab in the cycle: either the combined master
// source or a single category's dedicated tab.
type Source struct {
	Name     string
	Category inventory.Category
	Master   bool
}

// Report is the soft per-source result of a cycle. A non-nil Err means the
// source was skipped this cycle and local state kept; it is never fatal.
type Report struct {
	Source      Source
	Candidates  int
	SkippedRows int
	Outcome     Outcome
	Err         error
}

// Orchestrator sequences fetch/reconcile cycles. Reconciliation within a
// cycle is strictly sequential: the master source first, so category
// sources stay authoritative for their own category, then each category in
// declaration order.
type Orchestrator struct {
	store  ItemStore
	reader Reader
	opts   Options
	log    *slog.Logger
}

func NewOrchestrator(store ItemStore, reader Reader, opts Options, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}

	return &Orchestrator{store: store, reader: reader, opts: opts, log: log}
}

// Sources returns the fixed cycle order.
func Sources() []Source {
	out := []Source{{Name: "master data", Master: true}}

	for _, c := range inventory.Categories {
		out = append(out, Source{Name: strings.ToLower(string(c)), Category: c})
	}

	return out
}

// SyncAll runs one full reconciliation cycle across every source. One
// source failing does not stop the rest.
func (o *Orchestrator) SyncAll(ctx context.Context) []Report {
	sources := Sources()
	reports := make([]Report, 0, len(sources))

	for _, src := range sources {
		reports = append(reports, o.syncSource(ctx, src))
	}

	return reports
}

// SyncCategory reconciles a single category source on demand.
func (o *Orchestrator) SyncCategory(ctx context.Context, c inventory.Category) Report {
	return o.syncSource(ctx, Source{Name: strings.ToLower(string(c)), Category: c})
}

// ImportBatch reconciles a one-off candidate batch, such as a bulk file
// upload, under the same merge rules as a remote source.
func (o *Orchestrator) ImportBatch(batch []inventory.Candidate) (Outcome, error) {
	next, out := Reconcile(o.store.Items(), batch, o.opts)

	if err := o.store.Replace(next); err != nil {
		return out, err
	}

	return out, nil
}

func (o *Orchestrator) syncSource(ctx context.Context, src Source) Report {
	rep := Report{Source: src}

	res, err := o.reader.Read(ctx, src)
	if err != nil {
		// Soft failure: the source is skipped this cycle, local state kept.
		o.log.Warn("source sync failed", "source", src.Name, "error", err)
		rep.Err = err

		return rep
	}

	rep.Candidates = len(res.Candidates)
	rep.SkippedRows = res.Skipped

	if len(res.Candidates) == 0 {
		o.log.Info("source empty", "source", src.Name)
		return rep
	}

	next, out := Reconcile(o.store.Items(), res.Candidates, o.opts)
	if err := o.store.Replace(next); err != nil {
		rep.Err = err
		return rep
	}

	rep.Outcome = out
	o.log.Info("source reconciled",
		"source", src.Name,
		"candidates", rep.Candidates,
		"inserted", out.Inserted,
		"merged", out.Merged,
		"skipped_trashed", out.SkippedTrashed,
	)

	return rep
}
