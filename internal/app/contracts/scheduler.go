package contracts

import (
	"context"
	"time"
)

// Scheduler runs deferred tasks off the request path. Scheduling a key that is
// already pending replaces the earlier task.
type Scheduler interface {
	Schedule(key string, delay time.Duration, task func(ctx context.Context))
	Cancel(key string) bool
	Pending() int
	Stop()
}
