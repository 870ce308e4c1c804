// Package lifecycle holds shared start/stop constants for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds connection pings on start and graceful shutdown.
const DefaultTimeout = 10 * time.Second
