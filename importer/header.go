// Package importer maps heterogeneous tabular rows into canonical candidate
// records. Sources are user-maintained, so column headers vary freely
// ("Account Number", "AC NO", "acno", ...); each logical field carries an
// ordered alias list and the first alias present in the header row wins.
package importer

import "strings"

// field identifies one logical column of a source row.
type field int

const (
	fieldAccount field = iota
	fieldName
	fieldPhone
	fieldAddress
	fieldReceiveDate
	fieldDelivered
	fieldCategory
)

// headerAliases holds the accepted normalized header spellings per field,
// most specific first.
var headerAliases = map[field][]string{
	fieldAccount: {
		"accountnumber", "account", "acno", "ac", "accountno", "accno",
		"acnumber", "dpsslip", "dpsno", "slipno", "slno", "serial",
	},
	fieldName:        {"customername", "name", "customer", "client"},
	fieldPhone:       {"phonenumber", "phone", "mobile", "contact"},
	fieldAddress:     {"address", "location", "addr"},
	fieldReceiveDate: {"receivedate", "date", "rcvdate"},
	fieldDelivered:   {"delivered"},
	fieldCategory:    {"category"},
}

// NormalizeHeader case-folds a header cell and strips everything but letters
// and digits, so "Account Number", "account_number" and "ACCOUNT-NUMBER"
// compare equal.
func NormalizeHeader(s string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// colIndex maps normalized header names to their position in the header row.
type colIndex map[string]int

func indexHeader(header []string) colIndex {
	cols := make(colIndex, len(header))

	for i, cell := range header {
		name := NormalizeHeader(cell)
		if name == "" {
			continue
		}

		// First occurrence wins for duplicate headers.
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}

	return cols
}

// lookup resolves a logical field to its column, trying aliases in order.
func (c colIndex) lookup(f field) (int, bool) {
	for _, alias := range headerAliases[f] {
		if idx, ok := c[alias]; ok {
			return idx, true
		}
	}

	return 0, false
}

// cellValue safely gets a trimmed cell for a field; ragged rows read as "".
func (c colIndex) cellValue(row []string, f field) string {
	idx, ok := c.lookup(f)
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
