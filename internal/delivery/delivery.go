// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a running transport surface, such as an HTTP server.
// Implementations block in Serve until the surface shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
