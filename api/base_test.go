package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorded is a request as seen by the fake node
type recorded struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   string
}

type fakeNode struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []recorded
}

// newFakeNode serves body with status for every request and records what
// it received
func newFakeNode(t *testing.T, status int, body string) (*fakeNode, *Client) {
	t.Helper()

	node := &fakeNode{}
	node.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		node.mu.Lock()
		node.requests = append(node.requests, recorded{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   string(data),
		})
		node.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(node.server.Close)

	return node, NewClient(WithBaseURL(node.server.URL))
}

func (n *fakeNode) last(t *testing.T) recorded {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	require.NotEmpty(t, n.requests, "no request reached the node")
	return n.requests[len(n.requests)-1]
}

func (n *fakeNode) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.requests)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient()

	assert.Equal(t, DefaultBaseURL, client.BaseURL())
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}

func TestClientOptions(t *testing.T) {
	client := NewClient(
		WithBaseURL("https://krist.dev/"),
		WithTimeout(5*time.Second),
		WithUserAgent("test-agent"),
	)

	assert.Equal(t, "https://krist.dev", client.BaseURL())
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	assert.Equal(t, "test-agent", client.userAgent)
}

func TestWithHTTPClientUsedAsIs(t *testing.T) {
	hc := &http.Client{Timeout: 7 * time.Second}
	client := NewClient(WithHTTPClient(hc))

	assert.Same(t, hc, client.httpClient)
	assert.Equal(t, 7*time.Second, client.httpClient.Timeout)
}

func TestWithTimeoutLeavesCallerClientAlone(t *testing.T) {
	hc := &http.Client{}
	client := NewClient(WithHTTPClient(hc), WithTimeout(3*time.Second))

	assert.Equal(t, time.Duration(0), hc.Timeout)
	assert.NotSame(t, hc, client.httpClient)
	assert.Equal(t, 3*time.Second, client.httpClient.Timeout)

	before := http.DefaultClient.Timeout
	NewClient(WithHTTPClient(http.DefaultClient), WithTimeout(3*time.Second))
	assert.Equal(t, before, http.DefaultClient.Timeout)
}

func TestWithTimeoutOrderIndependent(t *testing.T) {
	hc := &http.Client{}
	client := NewClient(WithTimeout(4*time.Second), WithHTTPClient(hc))

	assert.Equal(t, time.Duration(0), hc.Timeout)
	assert.Equal(t, 4*time.Second, client.httpClient.Timeout)
}

func TestListQueryDefaults(t *testing.T) {
	q := listQuery(nil, true)
	assert.Equal(t, "50", q.Get("limit"))
	assert.Equal(t, "0", q.Get("offset"))
	assert.False(t, q.Has("excludeMined"))

	q = listQuery(&ListOptions{Limit: -3, Offset: -1}, false)
	assert.Equal(t, "50", q.Get("limit"))
	assert.Equal(t, "0", q.Get("offset"))
}

func TestListQueryExcludeMined(t *testing.T) {
	q := listQuery(&ListOptions{Limit: 10, Offset: 20, ExcludeMined: true}, true)
	assert.Equal(t, "10", q.Get("limit"))
	assert.Equal(t, "20", q.Get("offset"))
	assert.Equal(t, "true", q.Get("excludeMined"))

	// endpoints without a mined filter never send it
	q = listQuery(&ListOptions{ExcludeMined: true}, false)
	assert.False(t, q.Has("excludeMined"))
}

func TestErrorStatusIsDecoded(t *testing.T) {
	_, client := newFakeNode(t, http.StatusNotFound,
		`{"ok":false,"error":"address_not_found","message":"Address not found"}`)

	resp, err := client.GetAddress(context.Background(), "kaaaaaaaaa")
	require.NoError(t, err)

	assert.False(t, resp.OK)
	assert.Nil(t, resp.Address)
	assert.Equal(t, "address_not_found", resp.Error)

	var kerr *Error
	require.ErrorAs(t, resp.Err(), &kerr)
	assert.Equal(t, "address_not_found", kerr.Code)
	assert.Equal(t, "krist: address_not_found: Address not found", kerr.Error())
}

func TestNonJSONBodyIsDecodeFailure(t *testing.T) {
	_, client := newFakeNode(t, http.StatusBadGateway, `<html>bad gateway</html>`)

	resp, err := client.GetLastBlock(context.Background())
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response (status 502)")
}

func TestTransportFailureRejects(t *testing.T) {
	node, client := newFakeNode(t, http.StatusOK, `{}`)
	node.server.Close()

	calls := map[string]func() (interface{}, error){
		"GetAddress":       func() (interface{}, error) { return client.GetAddress(context.Background(), "k") },
		"GetBalance":       func() (interface{}, error) { return client.GetBalance(context.Background(), "k") },
		"GetBlock":         func() (interface{}, error) { return client.GetBlock(context.Background(), 1) },
		"GetBlockReward":   func() (interface{}, error) { return client.GetBlockReward(context.Background()) },
		"ListTransactions": func() (interface{}, error) { return client.ListTransactions(context.Background(), nil) },
		"MakeTransaction": func() (interface{}, error) {
			return client.MakeTransaction(context.Background(), "pk", "k", 1, "")
		},
		"SubmitBlock": func() (interface{}, error) { return client.SubmitBlock(context.Background(), "k", "1") },
	}

	for name, call := range calls {
		_, err := call()
		assert.Error(t, err, name)
		assert.Contains(t, err.Error(), "failed to send request", name)
	}
}

func TestContextCancellation(t *testing.T) {
	_, client := newFakeNode(t, http.StatusOK, `{"ok":true}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetLastBlock(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHeaders(t *testing.T) {
	node, client := newFakeNode(t, http.StatusOK, `{"ok":true}`)

	_, err := client.GetLastBlock(context.Background())
	require.NoError(t, err)

	req := node.last(t)
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, defaultUserAgent, req.Header.Get("User-Agent"))
}

func TestStatusErr(t *testing.T) {
	assert.NoError(t, Status{OK: true}.Err())
	assert.EqualError(t, Status{}.Err(), "krist: request failed")
	assert.EqualError(t, Status{Error: "rate_limit_hit"}.Err(), "krist: rate_limit_hit")
}
