package gsheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Toufiq-trt/toufiqsBALANCING/inventory"
	"github.com/Toufiq-trt/toufiqsBALANCING/sync"
)

func TestReader_Read(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/spreadsheets/d/master-id/export":
			assert.Equal(t, "master data", r.URL.Query().Get("sheet"))
			_, _ = w.Write([]byte("Account,Name,Category\nA100,alice,PIN\n"))
		case "/spreadsheets/d/pin-id/export":
			assert.Equal(t, "pin", r.URL.Query().Get("sheet"))
			_, _ = w.Write([]byte("Account,Name\nA200,bob\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(time.Second)
	client.baseURL = server.URL

	reader := NewReader(client, "master-id", map[inventory.Category]string{
		inventory.CategoryPIN: "pin-id",
	})

	res, err := reader.Read(context.Background(), sync.Source{Name: "master data", Master: true})
	require.NoError(t, err)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, inventory.CategoryPIN, res.Candidates[0].Category)

	res, err = reader.Read(context.Background(), sync.Source{Name: "pin", Category: inventory.CategoryPIN})
	require.NoError(t, err)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, "A200", res.Candidates[0].AccountNumber)
	assert.Equal(t, inventory.CategoryPIN, res.Candidates[0].Category)
}

func TestReader_Read_UnconfiguredCategory(t *testing.T) {
	reader := NewReader(NewClient(time.Second), "master-id", nil)

	_, err := reader.Read(context.Background(), sync.Source{Name: "pin", Category: inventory.CategoryPIN})
	assert.Error(t, err)
}
