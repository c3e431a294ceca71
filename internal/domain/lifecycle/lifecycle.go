// Package lifecycle holds shared start/stop settings for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start and stop hook (DB ping, server shutdown, publisher close).
const DefaultTimeout = 10 * time.Second
