// Package delivery defines the contract shared by all serving processes.
package delivery

import "context"

// Delivery represents a long-running server (HTTP API, worker, ...).
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
