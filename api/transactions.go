package api

import (
	"context"
	"strconv"
)

// ListTransactions lists all transactions in insertion order
func (c *Client) ListTransactions(ctx context.Context, opts *ListOptions) (*TransactionList, error) {
	var result TransactionList
	if err := c.getJSON(ctx, "/transactions", listQuery(opts, true), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListLatestTransactions lists the most recent transactions first
func (c *Client) ListLatestTransactions(ctx context.Context, opts *ListOptions) (*TransactionList, error) {
	var result TransactionList
	if err := c.getJSON(ctx, "/transactions/latest", listQuery(opts, true), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTransaction fetches a transaction by id
func (c *Client) GetTransaction(ctx context.Context, id int64) (*TransactionResponse, error) {
	var result TransactionResponse
	if err := c.getJSON(ctx, "/transactions/"+strconv.FormatInt(id, 10), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MakeTransaction sends amount from the address owned by privateKey to the
// recipient. A rejected transfer (insufficient_funds, auth_failed, ...) is
// returned as a decoded response with OK unset, not as an error.
func (c *Client) MakeTransaction(ctx context.Context, privateKey, to string, amount int64, metadata string) (*TransactionResponse, error) {
	payload := transferRequest{
		PrivateKey: privateKey,
		To:         to,
		Amount:     amount,
		Metadata:   metadata,
	}

	var result TransactionResponse
	if err := c.postJSON(ctx, "/transactions", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
