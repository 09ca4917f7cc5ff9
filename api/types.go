package api

import (
	"fmt"
	"time"
)

// Status is embedded in every Krist response. A decoded body with OK set to
// false carries a ledger-level failure such as insufficient_funds.
type Status struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Err returns the ledger error carried by the response, or nil when OK.
func (s Status) Err() error {
	if s.OK {
		return nil
	}
	return &Error{Code: s.Error, Message: s.Message}
}

// Error is a failure reported by the node inside a well-formed JSON body
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	switch {
	case e.Code == "" && e.Message == "":
		return "krist: request failed"
	case e.Message == "":
		return fmt.Sprintf("krist: %s", e.Code)
	default:
		return fmt.Sprintf("krist: %s: %s", e.Code, e.Message)
	}
}

// ListOptions controls pagination of list endpoints
type ListOptions struct {
	Limit        int  // zero or negative means DefaultLimit
	Offset       int  // negative means zero
	ExcludeMined bool // only honoured by transaction lists
}

// AddressRecord represents a Krist address
type AddressRecord struct {
	Address   string    `json:"address"`
	Balance   int64     `json:"balance"`
	TotalIn   int64     `json:"totalin"`
	TotalOut  int64     `json:"totalout"`
	FirstSeen time.Time `json:"firstseen"`
}

// Block represents a mined Krist block
type Block struct {
	Height     int64     `json:"height"`
	Address    string    `json:"address"`
	Hash       string    `json:"hash"`
	ShortHash  string    `json:"short_hash"`
	Value      int64     `json:"value"`
	Time       time.Time `json:"time"`
	Difficulty int64     `json:"difficulty"`
}

// Transaction represents a Krist transaction
type Transaction struct {
	ID           int64     `json:"id"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	Value        int64     `json:"value"`
	Time         time.Time `json:"time"`
	Name         string    `json:"name"`
	Metadata     string    `json:"metadata"`
	SentMetaname string    `json:"sent_metaname"`
	SentName     string    `json:"sent_name"`
	Type         string    `json:"type"`
}

// IsMined reports whether the transaction is a block reward credit
func (t Transaction) IsMined() bool {
	return t.Type == "mined" || t.From == ""
}

// Name represents a registered .kst name
type Name struct {
	Name          string     `json:"name"`
	Owner         string     `json:"owner"`
	OriginalOwner string     `json:"original_owner"`
	Registered    time.Time  `json:"registered"`
	Updated       *time.Time `json:"updated"`
	A             string     `json:"a"`
	Unpaid        int64      `json:"unpaid"`
}

// AddressResponse is the envelope returned by /addresses/{address}
type AddressResponse struct {
	Status
	Address *AddressRecord `json:"address"`
}

// AddressList is a page of addresses
type AddressList struct {
	Status
	Count     int             `json:"count"`
	Total     int             `json:"total"`
	Addresses []AddressRecord `json:"addresses"`
}

// BlockResponse is the envelope returned by /blocks/{height} and /blocks/last
type BlockResponse struct {
	Status
	Block *Block `json:"block"`
}

// BlockList is a page of blocks
type BlockList struct {
	Status
	Count  int     `json:"count"`
	Total  int     `json:"total"`
	Blocks []Block `json:"blocks"`
}

// RewardResponse is returned by /blocks/value
type RewardResponse struct {
	Status
	Value     int64 `json:"value"`
	BaseValue int64 `json:"base_value"`
}

// SubmitResponse is returned by /submit
type SubmitResponse struct {
	Status
	Success bool           `json:"success"`
	Work    int64          `json:"work"`
	Address *AddressRecord `json:"address"`
	Block   *Block         `json:"block"`
}

// TransactionResponse is the envelope returned by /transactions/{id} and
// by a transfer
type TransactionResponse struct {
	Status
	Transaction *Transaction `json:"transaction"`
}

// TransactionList is a page of transactions
type TransactionList struct {
	Status
	Count        int           `json:"count"`
	Total        int           `json:"total"`
	Transactions []Transaction `json:"transactions"`
}

// NameResponse is the envelope returned by /names/{name}
type NameResponse struct {
	Status
	Name *Name `json:"name"`
}

// NameList is a page of names
type NameList struct {
	Status
	Count int    `json:"count"`
	Total int    `json:"total"`
	Names []Name `json:"names"`
}

// WorkResponse is returned by /work
type WorkResponse struct {
	Status
	Work int64 `json:"work"`
}

// SupplyResponse is returned by /supply
type SupplyResponse struct {
	Status
	MoneySupply int64 `json:"money_supply"`
}

// MOTDResponse is returned by /motd
type MOTDResponse struct {
	Status
	MOTD      string    `json:"motd"`
	Set       time.Time `json:"set"`
	PublicURL string    `json:"public_url"`
	DebugMode bool      `json:"debug_mode"`
}

// LoginResponse is returned by /login
type LoginResponse struct {
	Status
	Authed  bool   `json:"authed"`
	Address string `json:"address"`
}

// transferRequest is the body of a POST /transactions
type transferRequest struct {
	PrivateKey string `json:"privatekey"`
	To         string `json:"to"`
	Amount     int64  `json:"amount"`
	Metadata   string `json:"metadata,omitempty"`
}

// submitRequest is the body of a POST /submit
type submitRequest struct {
	Address string `json:"address"`
	Nonce   string `json:"nonce"`
}

// loginRequest is the body of a POST /login
type loginRequest struct {
	PrivateKey string `json:"privatekey"`
}
