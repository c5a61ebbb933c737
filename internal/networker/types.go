// internal/networker/types.go
package networker

import (
	"context"
	"time"

	"github.com/tamzrod/slide-remote/internal/presenter"
)

// Presenter abstracts the presentation-control operations the worker needs.
type Presenter interface {
	SlideIndex(ctx context.Context) (presenter.Slide, error)
	Trigger(ctx context.Context, a presenter.Action) error
}

// Linker guards every request with a link check.
type Linker interface {
	Ensure(ctx context.Context) bool
}

// Config is the worker's immutable timing.
type Config struct {
	// PollInterval is the steady background poll period.
	PollInterval time.Duration
	// ForcedPollDelay separates a successful trigger from its follow-up poll.
	ForcedPollDelay time.Duration
	// RetryDelay separates a failed poll from its single retry.
	RetryDelay time.Duration
	// Yield is slept after every quantum.
	Yield time.Duration
	// MaxDrain bounds the commands handled per quantum.
	MaxDrain int
}

// Reachability is the server state as last observed.
type Reachability int

const (
	ReachUnknown Reachability = iota
	Reachable
	Unreachable
)

func (r Reachability) String() string {
	switch r {
	case Reachable:
		return "reachable"
	case Unreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Status lines emitted by the worker.
const (
	textUnreachable = "Server unreachable"
	textConnected   = "Connected"
	textOK          = "OK"
	textFailedFmt   = "Request Failed (%d)"
)

// codeTransport is reported when a request failed without an HTTP status.
const codeTransport = -1
