// internal/input/events.go
package input

import "github.com/tamzrod/slide-remote/internal/msg"

// Event is a debounced control event.
type Event int

const (
	NextClick Event = iota
	PreviousClick
	SelectShort
	SelectLong
)

func (e Event) String() string {
	switch e {
	case NextClick:
		return "next-click"
	case PreviousClick:
		return "previous-click"
	case SelectShort:
		return "select-short"
	case SelectLong:
		return "select-long"
	default:
		return "unknown"
	}
}

// Controls is a source of debounced events.
// Read must not block or perform I/O.
type Controls interface {
	Read() []Event
}

// LinkStatus reports the cached link state without I/O.
type LinkStatus interface {
	Connected() bool
}

// binding maps an event to its command and the feedback shown right away.
type binding struct {
	cmd      msg.Command
	feedback string
}

var bindings = map[Event]binding{
	NextClick:     {cmd: msg.Next, feedback: "Next..."},
	PreviousClick: {cmd: msg.Previous, feedback: "Previous..."},
	SelectShort:   {cmd: msg.Poll, feedback: "Refreshing..."},
	SelectLong:    {cmd: msg.JumpHome, feedback: "Jump to start..."},
}

const (
	textWifiUp   = "WiFi connected"
	textWifiDown = "WiFi disconnected"
)

// NoControls never reports events.
type NoControls struct{}

func (NoControls) Read() []Event { return nil }
