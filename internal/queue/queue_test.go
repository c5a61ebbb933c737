// internal/queue/queue_test.go
package queue

import (
	"context"
	"testing"
	"time"

	"github.com/tamzrod/slide-remote/internal/msg"
)

func TestTryPush_DropsNewestWhenFull(t *testing.T) {
	q := New[msg.Command](2)

	if !q.TryPush(msg.Next) || !q.TryPush(msg.Previous) {
		t.Fatalf("expected first two pushes to succeed")
	}
	if q.TryPush(msg.JumpHome) {
		t.Fatalf("expected push onto full queue to fail")
	}

	got := q.Drain(10)
	if len(got) != 2 || got[0] != msg.Next || got[1] != msg.Previous {
		t.Fatalf("unexpected drain order: %v", got)
	}

	st := q.Stats()
	if st.Sent != 2 || st.Dropped != 1 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}

func TestTryPush_NeverBlocks(t *testing.T) {
	q := New[msg.Command](1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			q.TryPush(msg.Poll)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("producer blocked on a full queue")
	}
	if q.Len() != 1 {
		t.Fatalf("expected 1 queued value, got %d", q.Len())
	}
}

func TestDrain_Bounded(t *testing.T) {
	q := New[int](8)
	for i := 0; i < 6; i++ {
		q.TryPush(i)
	}

	first := q.Drain(4)
	if len(first) != 4 || first[0] != 0 || first[3] != 3 {
		t.Fatalf("unexpected first drain: %v", first)
	}
	rest := q.Drain(4)
	if len(rest) != 2 || rest[0] != 4 {
		t.Fatalf("unexpected second drain: %v", rest)
	}
}

func TestPopWithin_Timeout(t *testing.T) {
	q := New[int](1)
	timeout := make(chan time.Time, 1)
	timeout <- time.Now()

	if _, ok := q.PopWithin(context.Background(), timeout); ok {
		t.Fatalf("expected timeout")
	}

	q.TryPush(7)
	v, ok := q.PopWithin(context.Background(), nil)
	if !ok || v != 7 {
		t.Fatalf("expected 7, got %d ok=%v", v, ok)
	}
}

func TestPopWithin_ContextDone(t *testing.T) {
	q := New[int](1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, ok := q.PopWithin(ctx, nil); ok {
		t.Fatalf("expected no value after cancel")
	}
}
