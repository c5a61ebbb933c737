// internal/queue/queue.go
package queue

import (
	"context"
	"sync/atomic"
	"time"
)

// Stats tracks delivery counters for one queue.
type Stats struct {
	Sent    uint64
	Dropped uint64
}

// Queue is a fixed-capacity FIFO shared by exactly one producer role and
// one consumer role. A push onto a full queue drops the new value.
type Queue[T any] struct {
	ch      chan T
	sent    atomic.Uint64
	dropped atomic.Uint64
}

// New creates a queue holding at most capacity values.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{ch: make(chan T, capacity)}
}

// TryPush enqueues v without blocking.
// Returns false when the queue was full and v was dropped.
func (q *Queue[T]) TryPush(v T) bool {
	select {
	case q.ch <- v:
		q.sent.Add(1)
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

// TryPop dequeues one value without blocking.
func (q *Queue[T]) TryPop() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Drain dequeues up to max pending values without blocking.
func (q *Queue[T]) Drain(max int) []T {
	var out []T
	for i := 0; i < max; i++ {
		v, ok := q.TryPop()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// PopWithin blocks until a value arrives, timeout fires or ctx ends.
func (q *Queue[T]) PopWithin(ctx context.Context, timeout <-chan time.Time) (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	case <-timeout:
	case <-ctx.Done():
	}
	var zero T
	return zero, false
}

// Len reports the number of queued values.
func (q *Queue[T]) Len() int { return len(q.ch) }

// Cap reports the fixed capacity.
func (q *Queue[T]) Cap() int { return cap(q.ch) }

// Stats returns a snapshot of the counters.
func (q *Queue[T]) Stats() Stats {
	return Stats{
		Sent:    q.sent.Load(),
		Dropped: q.dropped.Load(),
	}
}
