package gsheet

import (
	"context"
	"fmt"
	"time"

	"github.com/Toufiq-trt/toufiqsBALANCING/importer"
	"github.com/Toufiq-trt/toufiqsBALANCING/inventory"
	"github.com/Toufiq-trt/toufiqsBALANCING/sync"
)

// Reader resolves sync sources to spreadsheet tabs, fetches them and maps
// the rows into candidate records. It implements sync.Reader.
type Reader struct {
	client   *Client
	masterID string
	sheetIDs map[inventory.Category]string
}

func NewReader(client *Client, masterID string, sheetIDs map[inventory.Category]string) *Reader {
	return &Reader{client: client, masterID: masterID, sheetIDs: sheetIDs}
}

func (r *Reader) Read(ctx context.Context, src sync.Source) (importer.Result, error) {
	var (
		loc     Source
		binding importer.Binding
	)

	if src.Master {
		loc = Source{SpreadsheetID: r.masterID, Tab: MasterTab}
		binding = importer.Binding{Master: true}
	} else {
		id, ok := r.sheetIDs[src.Category]
		if !ok || id == "" {
			return importer.Result{}, fmt.Errorf("no spreadsheet configured for category %q", src.Category)
		}

		loc = Source{SpreadsheetID: id, Tab: CategoryTab(src.Category)}
		binding = importer.Binding{Category: src.Category}
	}

	rows, err := r.client.FetchRows(ctx, loc)
	if err != nil {
		return importer.Result{}, err
	}

	return importer.MapRows(rows, binding, time.Now()), nil
}
