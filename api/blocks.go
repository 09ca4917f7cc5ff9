package api

import (
	"context"
	"strconv"
)

// GetAllBlocks lists blocks in insertion order
func (c *Client) GetAllBlocks(ctx context.Context, opts *ListOptions) (*BlockList, error) {
	return c.listBlocks(ctx, "/blocks", opts)
}

// GetBlocksLowestHash lists blocks by ascending hash
func (c *Client) GetBlocksLowestHash(ctx context.Context, opts *ListOptions) (*BlockList, error) {
	return c.listBlocks(ctx, "/blocks/lowest", opts)
}

// GetLatestBlocks lists the most recently mined blocks first
func (c *Client) GetLatestBlocks(ctx context.Context, opts *ListOptions) (*BlockList, error) {
	return c.listBlocks(ctx, "/blocks/latest", opts)
}

func (c *Client) listBlocks(ctx context.Context, path string, opts *ListOptions) (*BlockList, error) {
	var result BlockList
	if err := c.getJSON(ctx, path, listQuery(opts, false), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBlock fetches a block by height
func (c *Client) GetBlock(ctx context.Context, height int64) (*BlockResponse, error) {
	var result BlockResponse
	if err := c.getJSON(ctx, "/blocks/"+strconv.FormatInt(height, 10), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetLastBlock fetches the most recently mined block
func (c *Client) GetLastBlock(ctx context.Context) (*BlockResponse, error) {
	var result BlockResponse
	if err := c.getJSON(ctx, "/blocks/last", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SubmitBlock submits a mining solution found for address
func (c *Client) SubmitBlock(ctx context.Context, address, nonce string) (*SubmitResponse, error) {
	payload := submitRequest{
		Address: address,
		Nonce:   nonce,
	}

	var result SubmitResponse
	if err := c.postJSON(ctx, "/submit", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBaseReward fetches the base block reward
func (c *Client) GetBaseReward(ctx context.Context) (int64, error) {
	var result RewardResponse
	if err := c.getJSON(ctx, "/blocks/basevalue", nil, &result); err != nil {
		return 0, err
	}
	if err := result.Err(); err != nil {
		return 0, err
	}
	return result.BaseValue, nil
}

// GetBlockReward fetches the current block reward, base value plus name bonus
func (c *Client) GetBlockReward(ctx context.Context) (int64, error) {
	rewards, err := c.GetRewards(ctx)
	if err != nil {
		return 0, err
	}
	if err := rewards.Err(); err != nil {
		return 0, err
	}
	return rewards.Value, nil
}

// GetRewards fetches the full reward object
func (c *Client) GetRewards(ctx context.Context) (*RewardResponse, error) {
	var result RewardResponse
	if err := c.getJSON(ctx, "/blocks/value", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetWork fetches the current mining difficulty
func (c *Client) GetWork(ctx context.Context) (int64, error) {
	var result WorkResponse
	if err := c.getJSON(ctx, "/work", nil, &result); err != nil {
		return 0, err
	}
	if err := result.Err(); err != nil {
		return 0, err
	}
	return result.Work, nil
}
