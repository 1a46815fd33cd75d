// Package gsheet reads Google-Sheets tabs as CSV exports: one combined
// "master data" tab plus one tab per item category.
package gsheet

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Toufiq-trt/toufiqsBALANCING/inventory"
)

// MasterTab is the fixed tab name of the combined master source.
const MasterTab = "master data"

// Source locates one spreadsheet tab.
type Source struct {
	SpreadsheetID string
	Tab           string
}

// CategoryTab returns the tab name bound to a category source.
func CategoryTab(c inventory.Category) string {
	return strings.ToLower(string(c))
}

const defaultBaseURL = "https://docs.google.com"

// ExportURL builds the CSV export endpoint for the tab.
func (s Source) ExportURL() string {
	return defaultBaseURL + s.exportPath()
}

func (s Source) exportPath() string {
	return fmt.Sprintf("/spreadsheets/d/%s/export?format=csv&sheet=%s",
		s.SpreadsheetID, url.QueryEscape(s.Tab))
}
