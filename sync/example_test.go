package sync_test

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Toufiq-trt/toufiqsBALANCING/config"
	"github.com/Toufiq-trt/toufiqsBALANCING/importer/gsheet"
	"github.com/Toufiq-trt/toufiqsBALANCING/inventory"
	"github.com/Toufiq-trt/toufiqsBALANCING/inventory/store"
	"github.com/Toufiq-trt/toufiqsBALANCING/sync"
)

// Example wires the engine together the way an embedding application would:
// load configuration, rehydrate the snapshot, then run one full
// reconciliation cycle against the configured sheets.
func Example() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	repo := store.New(cfg.Storage.SnapshotPath)
	svc := inventory.NewService(repo, cfg.RetentionOffset(), slog.Default())

	if err := svc.Load(); err != nil {
		panic(err)
	}

	client := gsheet.NewClient(cfg.Sheets.FetchTimeout)
	reader := gsheet.NewReader(client, cfg.Sheets.MasterID, cfg.CategorySheetIDs())

	opts := sync.Options{
		Retention: cfg.RetentionOffset(),
		Delivered: sync.ParseMergeMode(cfg.Sync.DeliveredMerge),
	}
	orch := sync.NewOrchestrator(svc, reader, opts, slog.Default())

	for _, rep := range orch.SyncAll(context.Background()) {
		if rep.Err != nil {
			fmt.Printf("%s: skipped (%v)\n", rep.Source.Name, rep.Err)
			continue
		}

		fmt.Printf("%s: %d inserted, %d merged\n",
			rep.Source.Name, rep.Outcome.Inserted, rep.Outcome.Merged)
	}
}
