// Package delivery defines the contract every transport (HTTP, worker, ...)
// fulfills toward the composition root.
package delivery

import "context"

// Delivery is a serving surface started by the composition root.
type Delivery interface {
	// Serve blocks until the surface stops or fails.
	Serve(ctx context.Context) error
}
