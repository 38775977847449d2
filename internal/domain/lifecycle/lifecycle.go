// Package lifecycle holds shared timeouts for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations.
const DefaultTimeout = 10 * time.Second
