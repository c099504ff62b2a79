// Package delivery defines the contract every transport entry point
// implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker endpoint, feed
// consumer). Serve blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
