package drc

import "sync/atomic"

// CancelToken is a cooperative cancellation flag observed only between
// checks (spec.md §5 — "Suspension points: only between checks"). It is
// safe for concurrent use: one goroutine cancels, the engine's owner task
// polls.
type CancelToken struct {
	cancelled atomic.Bool
}

// NewCancelToken returns a fresh, uncancelled token.
func NewCancelToken() *CancelToken { return &CancelToken{} }

// Cancel requests cancellation. Idempotent.
func (c *CancelToken) Cancel() { c.cancelled.Store(true) }

// Cancelled reports whether Cancel has been called.
func (c *CancelToken) Cancelled() bool {
	if c == nil {
		return false
	}
	return c.cancelled.Load()
}
