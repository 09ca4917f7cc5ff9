package api

import (
	"context"
	"time"
)

// Address binds a single Krist address to a client
type Address struct {
	client  *Client
	address string
}

// NewAddress makes an address object from an address string
func NewAddress(client *Client, address string) *Address {
	return &Address{client: client, address: address}
}

// Address returns the bound address string. It never touches the network.
func (a *Address) Address() string {
	return a.address
}

func (a *Address) String() string {
	return a.address
}

// Snapshot fetches the address record once
func (a *Address) Snapshot(ctx context.Context) (*AddressRecord, error) {
	return a.client.lookupAddress(ctx, a.address)
}

func (a *Address) Balance(ctx context.Context) (int64, error) {
	return a.client.GetBalance(ctx, a.address)
}

func (a *Address) TotalIn(ctx context.Context) (int64, error) {
	return a.client.GetTotalIn(ctx, a.address)
}

func (a *Address) TotalOut(ctx context.Context) (int64, error) {
	return a.client.GetTotalOut(ctx, a.address)
}

func (a *Address) FirstSeen(ctx context.Context) (time.Time, error) {
	return a.client.GetFirstSeen(ctx, a.address)
}

// OnBalance fetches the balance in the background and calls done once
func (a *Address) OnBalance(ctx context.Context, done func(int64, error)) {
	callback(ctx, a.Balance, done)
}

// OnTotalIn fetches the total received in the background and calls done once
func (a *Address) OnTotalIn(ctx context.Context, done func(int64, error)) {
	callback(ctx, a.TotalIn, done)
}

// OnTotalOut fetches the total sent in the background and calls done once
func (a *Address) OnTotalOut(ctx context.Context, done func(int64, error)) {
	callback(ctx, a.TotalOut, done)
}

// OnFirstSeen fetches the first-seen time in the background and calls done once
func (a *Address) OnFirstSeen(ctx context.Context, done func(time.Time, error)) {
	callback(ctx, a.FirstSeen, done)
}
