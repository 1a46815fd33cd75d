// Package excel maps uploaded spreadsheet files (.xlsx) into the same
// candidate shape the remote sources produce, so a bulk upload can be fed
// straight into the reconciliation engine as a one-off batch.
package excel

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Toufiq-trt/toufiqsBALANCING/importer"
	"github.com/Toufiq-trt/toufiqsBALANCING/inventory"
)

// Parse reads the first worksheet of an upload bound to one category.
// Unlike the remote sources, bulk uploads also drop rows without a customer
// name: an upload is human-curated and a nameless row there is junk, not a
// lagging sheet.
func Parse(r io.Reader, category inventory.Category) (importer.Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return importer.Result{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return importer.Result{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return importer.Result{}, fmt.Errorf("reading worksheet %q: %w", sheets[0], err)
	}

	res := importer.MapRows(rows, importer.Binding{Category: category}, time.Now())

	kept := res.Candidates[:0]

	for _, c := range res.Candidates {
		if c.CustomerName == "UNKNOWN" {
			res.Skipped++
			continue
		}

		kept = append(kept, c)
	}

	res.Candidates = kept

	return res, nil
}
