package api

import (
	"context"
	"strings"
)

// GetName fetches a registered name, with or without the .kst suffix
func (c *Client) GetName(ctx context.Context, name string) (*NameResponse, error) {
	var result NameResponse
	if err := c.getJSON(ctx, "/names"+segment(strings.TrimSuffix(name, ".kst")), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListNames lists all registered names
func (c *Client) ListNames(ctx context.Context, opts *ListOptions) (*NameList, error) {
	var result NameList
	if err := c.getJSON(ctx, "/names", listQuery(opts, false), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetSupply fetches the amount of Krist in circulation
func (c *Client) GetSupply(ctx context.Context) (int64, error) {
	var result SupplyResponse
	if err := c.getJSON(ctx, "/supply", nil, &result); err != nil {
		return 0, err
	}
	if err := result.Err(); err != nil {
		return 0, err
	}
	return result.MoneySupply, nil
}

// GetMOTD fetches the node's message of the day
func (c *Client) GetMOTD(ctx context.Context) (*MOTDResponse, error) {
	var result MOTDResponse
	if err := c.getJSON(ctx, "/motd", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Login asks the node which address privateKey controls
func (c *Client) Login(ctx context.Context, privateKey string) (*LoginResponse, error) {
	var result LoginResponse
	if err := c.postJSON(ctx, "/login", loginRequest{PrivateKey: privateKey}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
