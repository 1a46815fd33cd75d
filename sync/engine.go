// Package sync reconciles remote spreadsheet state into the local item
// collection. The engine is a pure function over (collection, batch); the
// orchestrator sequences fetches and hands each result back to the store,
// which stays the only writer.
package sync

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Toufiq-trt/toufiqsBALANCING/inventory"
)

// MergeMode controls how a source's delivered marker combines with local
// delivered state.
type MergeMode string

const (
	// MergeOR keeps an item delivered once either side says so; a sheet
	// lagging behind a local Deliver action can never un-deliver it.
	MergeOR MergeMode = "or"
	// MergeOverwrite takes the sheet's delivered state verbatim.
	MergeOverwrite MergeMode = "overwrite"
)

// ParseMergeMode maps a configuration string to a MergeMode; anything but
// "overwrite" resolves to the safer OR-merge.
func ParseMergeMode(s string) MergeMode {
	if strings.EqualFold(strings.TrimSpace(s), string(MergeOverwrite)) {
		return MergeOverwrite
	}

	return MergeOR
}

// Options carries the reconciliation policy. The zero value means the
// default retention offset and OR-merge.
type Options struct {
	Retention inventory.Retention
	Delivered MergeMode
}

// Outcome summarizes one engine pass over one batch.
type Outcome struct {
	Inserted       int
	Merged         int
	SkippedTrashed int
}

// Reconcile merges a batch of candidates into the collection and returns the
// next collection state. Candidates apply in row order; duplicate keys
// within one batch re-merge sequentially, so the last row wins descriptive
// fields. Re-running with an unchanged batch reproduces the same state.
func Reconcile(items []inventory.Item, batch []inventory.Candidate, opts Options) ([]inventory.Item, Outcome) {
	if opts.Retention == (inventory.Retention{}) {
		opts.Retention = inventory.DefaultRetention
	}

	next := make([]inventory.Item, len(items))
	copy(next, items)

	var out Outcome

	for _, cand := range batch {
		key := inventory.Key{
			Account:  inventory.NormalizeAccount(cand.AccountNumber),
			Category: cand.Category,
		}

		idx := -1

		for i := range next {
			if next[i].Key() == key {
				idx = i
				break
			}
		}

		if idx < 0 {
			next = append(next, newItem(cand, opts))
			out.Inserted++

			continue
		}

		// Sticky trash: remote data never resurrects a trashed record.
		if next[idx].IsTrashed {
			out.SkippedTrashed++
			continue
		}

		next[idx] = merge(next[idx], cand, opts)
		out.Merged++
	}

	return next, out
}

// merge overwrites descriptive fields with the candidate's values and
// combines delivered state per policy. Identity (id, category) and the
// trash flag are untouched.
func merge(existing inventory.Item, cand inventory.Candidate, opts Options) inventory.Item {
	it := existing
	it.AccountNumber = strings.TrimSpace(cand.AccountNumber)
	it.CustomerName = strings.ToUpper(strings.TrimSpace(cand.CustomerName))
	it.PhoneNumber = strings.TrimSpace(cand.PhoneNumber)
	it.Address = strings.ToUpper(strings.TrimSpace(cand.Address))
	it.ReceiveDate = cand.ReceiveDate
	it.DestroyDate = opts.Retention.DestroyDate(cand.ReceiveDate)

	switch {
	case opts.Delivered == MergeOverwrite:
		it.IsDelivered = cand.Delivered
		it.DeliveryDate = nil

		if cand.Delivered {
			d := cand.DeliveryDate
			it.DeliveryDate = &d
		}
	case cand.Delivered:
		it.IsDelivered = true
		d := cand.DeliveryDate
		it.DeliveryDate = &d
	default:
		// OR-merge with no marker from this source: local delivered state
		// and date stand.
	}

	return it
}

func newItem(cand inventory.Candidate, opts Options) inventory.Item {
	it := inventory.Item{
		ID:            uuid.New(),
		AccountNumber: strings.TrimSpace(cand.AccountNumber),
		CustomerName:  strings.ToUpper(strings.TrimSpace(cand.CustomerName)),
		PhoneNumber:   strings.TrimSpace(cand.PhoneNumber),
		Address:       strings.ToUpper(strings.TrimSpace(cand.Address)),
		Category:      cand.Category,
		ReceiveDate:   cand.ReceiveDate,
		DestroyDate:   opts.Retention.DestroyDate(cand.ReceiveDate),
		IsDelivered:   cand.Delivered,
	}

	if cand.Delivered {
		d := cand.DeliveryDate
		it.DeliveryDate = &d
	}

	return it
}
