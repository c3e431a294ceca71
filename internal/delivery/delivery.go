// Package delivery defines the contract shared by every inbound server.
package delivery

import "context"

// Delivery is a long-running server started by the fx app and stopped through its lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
