package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetName(t *testing.T) {
	node, client := newFakeNode(t, http.StatusOK, `{"ok":true,"name":{"name":"example","owner":"kre3w0i79j","registered":"2016-02-06T14:01:19.000Z","a":"example.com"}}`)

	resp, err := client.GetName(context.Background(), "example.kst")
	require.NoError(t, err)
	assert.Equal(t, "/names/example", node.last(t).Path)
	assert.Equal(t, "kre3w0i79j", resp.Name.Owner)
	assert.Equal(t, "example.com", resp.Name.A)
}

func TestListNames(t *testing.T) {
	node, client := newFakeNode(t, http.StatusOK, `{"ok":true,"count":0,"total":0,"names":[]}`)

	_, err := client.ListNames(context.Background(), &ListOptions{Offset: 50})
	require.NoError(t, err)
	req := node.last(t)
	assert.Equal(t, "/names", req.Path)
	assert.Equal(t, "50", req.Query.Get("offset"))
}

func TestGetSupply(t *testing.T) {
	node, client := newFakeNode(t, http.StatusOK, `{"ok":true,"money_supply":14212049}`)

	supply, err := client.GetSupply(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/supply", node.last(t).Path)
	assert.Equal(t, int64(14212049), supply)
}

func TestGetMOTD(t *testing.T) {
	_, client := newFakeNode(t, http.StatusOK, `{"ok":true,"motd":"Welcome to Krist!","set":"2021-01-01T00:00:00.000Z","public_url":"krist.ceriat.net"}`)

	motd, err := client.GetMOTD(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Krist!", motd.MOTD)
	assert.Equal(t, "krist.ceriat.net", motd.PublicURL)
}

func TestLogin(t *testing.T) {
	node, client := newFakeNode(t, http.StatusOK, `{"ok":true,"authed":true,"address":"kre3w0i79j"}`)

	resp, err := client.Login(context.Background(), "pk")
	require.NoError(t, err)

	req := node.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/login", req.Path)
	assert.JSONEq(t, `{"privatekey":"pk"}`, req.Body)
	assert.True(t, resp.Authed)
	assert.Equal(t, "kre3w0i79j", resp.Address)
}
