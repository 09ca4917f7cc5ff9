package cmd

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/kristkit/krist/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// historyNode serves total transactions for /addresses/{a}/transactions,
// honouring limit and offset
func historyNode(t *testing.T, total int) (*httptest.Server, *[]string) {
	t.Helper()

	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.RawQuery)

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		var txs []api.Transaction
		for i := offset; i < offset+limit && i < total; i++ {
			txs = append(txs, api.Transaction{
				ID:    int64(total - i),
				From:  "kre3w0i79j",
				To:    "k5ztameslf",
				Value: int64(i + 1),
				Time:  time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
				Type:  "transfer",
			})
		}

		_ = json.NewEncoder(w).Encode(api.TransactionList{
			Status:       api.Status{OK: true},
			Count:        len(txs),
			Total:        total,
			Transactions: txs,
		})
	}))
	t.Cleanup(server.Close)
	return server, &queries
}

func TestExportTransactionsPages(t *testing.T) {
	server, queries := historyNode(t, 2500)
	client := api.NewClient(api.WithBaseURL(server.URL))

	var buf bytes.Buffer
	written, err := exportTransactions(context.Background(), client, "kre3w0i79j", true, &buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 2500, written)

	require.Len(t, *queries, 3)
	assert.Equal(t, "excludeMined=true&limit=1000&offset=0", (*queries)[0])
	assert.Equal(t, "excludeMined=true&limit=1000&offset=2000", (*queries)[2])

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2501)
	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, []string{"2500", "2021-01-01T00:00:00Z", "transfer", "kre3w0i79j", "k5ztameslf", "1", "", "", "", ""}, records[1])
}

func TestExportTransactionsEmpty(t *testing.T) {
	server, queries := historyNode(t, 0)
	client := api.NewClient(api.WithBaseURL(server.URL))

	var buf bytes.Buffer
	written, err := exportTransactions(context.Background(), client, "kre3w0i79j", false, &buf, nil)
	require.NoError(t, err)
	assert.Zero(t, written)
	assert.Len(t, *queries, 1)
	assert.Equal(t, "id,time,type,from,to,value,name,sent_name,sent_metaname,metadata\n", buf.String())
}

func TestExportTransactionsLedgerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error":"invalid_parameter","parameter":"address"}`))
	}))
	t.Cleanup(server.Close)

	var buf bytes.Buffer
	_, err := exportTransactions(context.Background(), api.NewClient(api.WithBaseURL(server.URL)), "bad", false, &buf, nil)

	var kerr *api.Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, "invalid_parameter", kerr.Code)
}
