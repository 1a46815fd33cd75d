package importer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Toufiq-trt/toufiqsBALANCING/importer"
	"github.com/Toufiq-trt/toufiqsBALANCING/inventory"
)

var now = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func TestMapRows_HeaderAliases(t *testing.T) {
	type testCase struct {
		name   string
		header []string
	}

	tests := []testCase{
		{name: "canonical", header: []string{"Account Number", "Customer Name", "Phone Number", "Address", "Receive Date"}},
		{name: "short", header: []string{"AC NO", "Name", "Mobile", "Location", "Date"}},
		{name: "slip", header: []string{"Slip No", "Client", "Contact", "Addr", "RCV DATE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := [][]string{
				tt.header,
				{"123-456", "alice", "555-0100", "old town", "2024-01-15"},
			}

			res := importer.MapRows(rows, importer.Binding{Category: inventory.CategoryPIN}, now)
			require.Len(t, res.Candidates, 1)

			c := res.Candidates[0]
			assert.Equal(t, "123-456", c.AccountNumber)
			assert.Equal(t, "ALICE", c.CustomerName)
			assert.Equal(t, "555-0100", c.PhoneNumber)
			assert.Equal(t, "OLD TOWN", c.Address)
			assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), c.ReceiveDate)
			assert.Equal(t, inventory.CategoryPIN, c.Category)
			assert.False(t, c.Delivered)
		})
	}
}

func TestMapRows_NumericFirstCellFallback(t *testing.T) {
	rows := [][]string{
		{"SL", "Customer Name"}, // no account alias in the header
		{"10023", "alice"},
		{"abc", "bob"}, // non-numeric first cell: no candidate
	}

	res := importer.MapRows(rows, importer.Binding{Category: inventory.CategoryDPSSlip}, now)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, "10023", res.Candidates[0].AccountNumber)
	assert.Equal(t, 1, res.Skipped)
}

func TestMapRows_MissingNameDefaultsUnknown(t *testing.T) {
	rows := [][]string{
		{"Account", "Name"},
		{"A100", ""},
	}

	res := importer.MapRows(rows, importer.Binding{Category: inventory.CategoryDebitCard}, now)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, "UNKNOWN", res.Candidates[0].CustomerName)
}

func TestMapRows_UnresolvableRowSkipped(t *testing.T) {
	rows := [][]string{
		{"Account", "Name"},
		{"", "no account here"},
		{"A200", "kept"},
	}

	res := importer.MapRows(rows, importer.Binding{Category: inventory.CategoryDebitCard}, now)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, "A200", res.Candidates[0].AccountNumber)
	assert.Equal(t, 1, res.Skipped)
}

func TestMapRows_DateFallsBackToToday(t *testing.T) {
	rows := [][]string{
		{"Account", "Receive Date"},
		{"A100", "not a date"},
		{"A200", ""},
	}

	res := importer.MapRows(rows, importer.Binding{Category: inventory.CategoryDebitCard}, now)
	require.Len(t, res.Candidates, 2)
	assert.Equal(t, now, res.Candidates[0].ReceiveDate)
	assert.Equal(t, now, res.Candidates[1].ReceiveDate)
}

func TestMapRows_DeliveredMarker(t *testing.T) {
	rows := [][]string{
		{"Account", "Delivered"},
		{"A100", "2024-02-01"},
		{"A200", "yes"}, // unparseable marker still means delivered, as of today
		{"A300", ""},
	}

	res := importer.MapRows(rows, importer.Binding{Category: inventory.CategoryDebitCard}, now)
	require.Len(t, res.Candidates, 3)

	assert.True(t, res.Candidates[0].Delivered)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), res.Candidates[0].DeliveryDate)

	assert.True(t, res.Candidates[1].Delivered)
	assert.Equal(t, now, res.Candidates[1].DeliveryDate)

	assert.False(t, res.Candidates[2].Delivered)
}

func TestMapRows_MasterCategoryColumn(t *testing.T) {
	rows := [][]string{
		{"Account", "Category"},
		{"A100", "cheque book"},
		{"A200", "SOMETHING ELSE"},
		{"A300", ""},
	}

	res := importer.MapRows(rows, importer.Binding{Master: true}, now)
	require.Len(t, res.Candidates, 3)
	assert.Equal(t, inventory.CategoryChequeBook, res.Candidates[0].Category)
	assert.Equal(t, inventory.CategoryDebitCard, res.Candidates[1].Category)
	assert.Equal(t, inventory.CategoryDebitCard, res.Candidates[2].Category)
}

func TestMapRows_CategoryBindingOverridesColumn(t *testing.T) {
	rows := [][]string{
		{"Account", "Category"},
		{"A100", "PIN"}, // stray column value on a per-category source
	}

	res := importer.MapRows(rows, importer.Binding{Category: inventory.CategoryChequeBook}, now)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, inventory.CategoryChequeBook, res.Candidates[0].Category)
}

func TestMapRows_EmptySource(t *testing.T) {
	assert.Empty(t, importer.MapRows(nil, importer.Binding{Master: true}, now).Candidates)
	assert.Empty(t, importer.MapRows([][]string{{"Account"}}, importer.Binding{Master: true}, now).Candidates)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "accountnumber", importer.NormalizeHeader(" Account_Number "))
	assert.Equal(t, "acno", importer.NormalizeHeader("A/C NO."))
	assert.Equal(t, "", importer.NormalizeHeader("---"))
}

func TestParseDate(t *testing.T) {
	got, ok := importer.ParseDate("2024-01-15")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)

	got, ok = importer.ParseDate("01/15/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)

	_, ok = importer.ParseDate("soon")
	assert.False(t, ok)
}
