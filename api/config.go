package api

import "time"

// Node endpoints
const (
	// public krist node
	DefaultBaseURL = "https://krist.ceriat.net"
)

// Request defaults
const (
	DefaultLimit   = 50
	DefaultOffset  = 0
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "krist-go"
)
