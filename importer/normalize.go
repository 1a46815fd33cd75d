package importer

import (
	"strings"
	"time"

	"github.com/Toufiq-trt/toufiqsBALANCING/inventory"
)

// Binding ties a batch of rows to its category resolution mode. A
// per-category source pins every row to its own category regardless of any
// stray column value; the combined master source reads the category column,
// falling back to DEBIT CARD when it is absent or unrecognized.
type Binding struct {
	Category inventory.Category
	Master   bool
}

// Result is the outcome of mapping one parsed source.
type Result struct {
	Candidates []inventory.Candidate
	Skipped    int // data rows with no resolvable account number
}

// MapRows converts parsed rows (header row first) into candidate records.
// Fewer than two rows means an empty source: nothing to reconcile, not an
// error. now anchors the fallbacks for missing or unparseable dates.
func MapRows(rows [][]string, b Binding, now time.Time) Result {
	if len(rows) < 2 {
		return Result{}
	}

	cols := indexHeader(rows[0])

	var res Result

	for _, row := range rows[1:] {
		cand, ok := mapRow(row, cols, b, now)
		if !ok {
			res.Skipped++
			continue
		}

		res.Candidates = append(res.Candidates, cand)
	}

	return res
}

func mapRow(row []string, cols colIndex, b Binding, now time.Time) (inventory.Candidate, bool) {
	account := cols.cellValue(row, fieldAccount)
	if account == "" {
		// Sheets with an unlabeled leading serial column: a purely numeric
		// first cell stands in for the account number.
		if len(row) > 0 && isNumeric(strings.TrimSpace(row[0])) {
			account = strings.TrimSpace(row[0])
		}
	}

	if account == "" {
		return inventory.Candidate{}, false
	}

	name := strings.ToUpper(cols.cellValue(row, fieldName))
	if name == "" {
		// Incomplete name data is common and must not block reconciling
		// the identifier.
		name = "UNKNOWN"
	}

	cand := inventory.Candidate{
		AccountNumber: account,
		CustomerName:  name,
		PhoneNumber:   cols.cellValue(row, fieldPhone),
		Address:       strings.ToUpper(cols.cellValue(row, fieldAddress)),
		Category:      resolveCategory(cols.cellValue(row, fieldCategory), b),
		ReceiveDate:   dateOr(cols.cellValue(row, fieldReceiveDate), now),
	}

	// A non-empty delivered cell marks the row delivered as of that value.
	// An empty cell says nothing about local delivered state.
	if raw := cols.cellValue(row, fieldDelivered); raw != "" {
		cand.Delivered = true
		cand.DeliveryDate = dateOr(raw, now)
	}

	return cand, true
}

func resolveCategory(cell string, b Binding) inventory.Category {
	if !b.Master {
		return b.Category
	}

	if c, ok := inventory.ParseCategory(cell); ok {
		return c
	}

	return inventory.CategoryDebitCard
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
