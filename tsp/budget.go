// Package tsp - cooperative time budget.
//
// A budget merges the soft wall-clock limit with context cancellation.
// Engines poll it at loop boundaries only; it never interrupts work.

package tsp

import (
	"context"
	"time"
)

type budget struct {
	ctx         context.Context
	start       time.Time
	useDeadline bool
	deadline    time.Time
}

// newBudget starts the clock. limit<=0 disables the wall-clock deadline;
// cancellation of ctx is still honoured.
func newBudget(ctx context.Context, limit time.Duration) *budget {
	if ctx == nil {
		ctx = context.Background()
	}
	b := &budget{ctx: ctx, start: time.Now()}
	if limit > 0 {
		b.useDeadline = true
		b.deadline = b.start.Add(limit)
	}

	return b
}

// expired reports whether the engine should stop at the next boundary.
func (b *budget) expired() bool {
	if b.useDeadline && !time.Now().Before(b.deadline) {
		return true
	}
	select {
	case <-b.ctx.Done():
		return true
	default:
		return false
	}
}

// elapsed returns the wall-clock time since the budget started.
func (b *budget) elapsed() time.Duration { return time.Since(b.start) }
