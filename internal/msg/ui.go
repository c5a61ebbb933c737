// internal/msg/ui.go
package msg

// UI is an instruction from the network worker (or the input sampler,
// for immediate feedback) to the render worker.
//
// The set of kinds is closed: only types in this package implement it.
type UI interface {
	isUI()
}

// Category is the semantic color class of a status line.
// Chosen by the producer from the outcome, never guessed by the renderer.
type Category int

const (
	Neutral Category = iota
	Good
	Bad
)

func (c Category) String() string {
	switch c {
	case Good:
		return "good"
	case Bad:
		return "bad"
	default:
		return "neutral"
	}
}

// Server carries a reachability transition alongside a status line.
type Server int

const (
	ServerUnchanged Server = iota
	ServerReachable
	ServerUnreachable
)

// IndexUnknown marks a slide update whose index is not known.
const IndexUnknown = 0

// StatusText replaces the status bar text.
type StatusText struct {
	Text     string
	Category Category
	Server   Server
}

// WifiState announces a link connectivity change.
type WifiState struct {
	Text      string
	Connected bool
}

// SlideUpdate reports the current slide.
// Index is 1-based; IndexUnknown when the server did not say.
type SlideUpdate struct {
	Index int
	Title string
}

func (StatusText) isUI()  {}
func (WifiState) isUI()   {}
func (SlideUpdate) isUI() {}
