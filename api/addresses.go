package api

import (
	"context"
	"fmt"
	"time"
)

// GetAddress fetches the full record of a Krist address
func (c *Client) GetAddress(ctx context.Context, address string) (*AddressResponse, error) {
	var result AddressResponse
	if err := c.getJSON(ctx, "/addresses"+segment(address), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// lookupAddress fetches an address and fails when the node did not return
// a record, so projections never hand back a silent zero.
func (c *Client) lookupAddress(ctx context.Context, address string) (*AddressRecord, error) {
	resp, err := c.GetAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	if resp.Address == nil {
		if err := resp.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("address data not found in response")
	}
	return resp.Address, nil
}

// GetBalance fetches the balance of an address. Each projection costs a
// full address fetch; use GetAddress when several fields are needed.
func (c *Client) GetBalance(ctx context.Context, address string) (int64, error) {
	record, err := c.lookupAddress(ctx, address)
	if err != nil {
		return 0, err
	}
	return record.Balance, nil
}

// GetTotalIn fetches the lifetime amount received by an address
func (c *Client) GetTotalIn(ctx context.Context, address string) (int64, error) {
	record, err := c.lookupAddress(ctx, address)
	if err != nil {
		return 0, err
	}
	return record.TotalIn, nil
}

// GetTotalOut fetches the lifetime amount sent by an address
func (c *Client) GetTotalOut(ctx context.Context, address string) (int64, error) {
	record, err := c.lookupAddress(ctx, address)
	if err != nil {
		return 0, err
	}
	return record.TotalOut, nil
}

// GetFirstSeen fetches the time an address first appeared on the ledger
func (c *Client) GetFirstSeen(ctx context.Context, address string) (time.Time, error) {
	record, err := c.lookupAddress(ctx, address)
	if err != nil {
		return time.Time{}, err
	}
	return record.FirstSeen, nil
}

// GetAllAddresses lists known addresses
func (c *Client) GetAllAddresses(ctx context.Context, opts *ListOptions) (*AddressList, error) {
	var result AddressList
	if err := c.getJSON(ctx, "/addresses", listQuery(opts, false), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRichestAddresses lists addresses by descending balance
func (c *Client) GetRichestAddresses(ctx context.Context, opts *ListOptions) (*AddressList, error) {
	var result AddressList
	if err := c.getJSON(ctx, "/addresses/rich", listQuery(opts, false), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRecentTransactions lists transactions sent from or to an address
func (c *Client) GetRecentTransactions(ctx context.Context, address string, opts *ListOptions) (*TransactionList, error) {
	var result TransactionList
	path := "/addresses" + segment(address) + "/transactions"
	if err := c.getJSON(ctx, path, listQuery(opts, true), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAddressNames lists the names owned by an address
func (c *Client) GetAddressNames(ctx context.Context, address string, opts *ListOptions) (*NameList, error) {
	var result NameList
	path := "/addresses" + segment(address) + "/names"
	if err := c.getJSON(ctx, path, listQuery(opts, false), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
