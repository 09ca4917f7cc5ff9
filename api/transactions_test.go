package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transactionBody = `{"ok":true,"transaction":{"id":1007,"from":"kre3w0i79j","to":"kristaddress1","value":10,"time":"2021-04-01T10:00:00.000Z","name":null,"metadata":"meta","sent_metaname":null,"sent_name":null,"type":"transfer"}}`

func TestMakeTransaction(t *testing.T) {
	node, client := newFakeNode(t, http.StatusOK, transactionBody)

	resp, err := client.MakeTransaction(context.Background(), "pk", "kristaddress1", 10, "meta")
	require.NoError(t, err)

	req := node.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/transactions", req.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, `{"privatekey":"pk","to":"kristaddress1","amount":10,"metadata":"meta"}`, req.Body)

	require.True(t, resp.OK)
	assert.Equal(t, int64(1007), resp.Transaction.ID)
	assert.Equal(t, int64(10), resp.Transaction.Value)
	assert.Equal(t, "meta", resp.Transaction.Metadata)
}

func TestMakeTransactionWithoutMetadata(t *testing.T) {
	node, client := newFakeNode(t, http.StatusOK, transactionBody)

	_, err := client.MakeTransaction(context.Background(), "pk", "kristaddress1", 10, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"privatekey":"pk","to":"kristaddress1","amount":10}`, node.last(t).Body)
}

func TestMakeTransactionLedgerRejection(t *testing.T) {
	_, client := newFakeNode(t, http.StatusForbidden,
		`{"ok":false,"error":"insufficient_funds","message":"Insufficient funds"}`)

	resp, err := client.MakeTransaction(context.Background(), "pk", "kristaddress1", 1000000, "")
	require.NoError(t, err, "ledger rejections travel through the decoded response")

	assert.False(t, resp.OK)
	assert.Nil(t, resp.Transaction)
	assert.Equal(t, "insufficient_funds", resp.Error)
	assert.Error(t, resp.Err())
}

func TestGetTransaction(t *testing.T) {
	node, client := newFakeNode(t, http.StatusOK, transactionBody)

	resp, err := client.GetTransaction(context.Background(), 1007)
	require.NoError(t, err)
	assert.Equal(t, "/transactions/1007", node.last(t).Path)
	assert.Equal(t, "kristaddress1", resp.Transaction.To)
}

func TestTransactionLists(t *testing.T) {
	node, client := newFakeNode(t, http.StatusOK, `{"ok":true,"count":0,"total":0,"transactions":[]}`)
	ctx := context.Background()

	_, err := client.ListTransactions(ctx, nil)
	require.NoError(t, err)
	req := node.last(t)
	assert.Equal(t, "/transactions", req.Path)
	assert.Equal(t, "50", req.Query.Get("limit"))
	assert.Equal(t, "0", req.Query.Get("offset"))
	assert.False(t, req.Query.Has("excludeMined"))

	_, err = client.ListLatestTransactions(ctx, &ListOptions{Limit: 20, ExcludeMined: true})
	require.NoError(t, err)
	req = node.last(t)
	assert.Equal(t, "/transactions/latest", req.Path)
	assert.Equal(t, "20", req.Query.Get("limit"))
	assert.Equal(t, "true", req.Query.Get("excludeMined"))

	_, err = client.ListLatestTransactions(ctx, &ListOptions{ExcludeMined: false})
	require.NoError(t, err)
	assert.False(t, node.last(t).Query.Has("excludeMined"))
}
