package api

// Krist API Client-
//
// Files:
//   config.go        - Node URL and request defaults
//   types.go         - Response envelopes and records (address, block, transaction, name)
//   base.go          - Core client functionality (Client, NewClient, getJSON/postJSON)
//   addresses.go     - Address lookups, rich list, per-address transactions and names
//   blocks.go        - Block lookups, rewards, work and block submission
//   transactions.go  - Transaction listing, lookup and transfers
//   names.go         - Names, supply, MOTD and login
//   address.go       - Address value object bound to a single address
//   result.go        - Result channel and callback adapters
//
// Usage:
//   client := api.NewClient()                                   // from base.go
//   balance, err := client.GetBalance(ctx, "kre3w0i79j")       // from addresses.go
//   blocks, err := client.GetLatestBlocks(ctx, nil)             // from blocks.go
//   tx, err := client.MakeTransaction(ctx, pk, to, 10, "")      // from transactions.go
