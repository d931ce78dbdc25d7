// Package workers bounds how many CPU-heavy jobs run at the same time.
//
// Password hashing is deliberately slow; without a limit a burst of login
// requests would run one bcrypt computation per request and starve the rest
// of the process. A [Pool] hands out a fixed number of slots and callers
// wait (respecting their context) until one is free.
package workers

import "context"

// Pool runs jobs with bounded concurrency.
type Pool interface {
	// Do waits for a free slot, runs job in the calling goroutine and
	// releases the slot. If ctx ends before a slot is acquired, job is not
	// run and the context error is returned.
	Do(ctx context.Context, job func()) error
}
